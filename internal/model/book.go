package model

const KindBook = "Book"

type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title" param:"title,required"`
	Author string `json:"author" param:"author,required"`
	Year   string `json:"year" param:"year,required"`
}

func (b *Book) Key() int64 {
	return b.ID
}

func (b *Book) AssignKey(id int64) {
	b.ID = id
}

// UpdateFrom overwrites every field except the id
func (b *Book) UpdateFrom(other Book) {
	b.Title = other.Title
	b.Author = other.Author
	b.Year = other.Year
}
