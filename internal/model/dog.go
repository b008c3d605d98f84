package model

const KindDog = "Dog"

// Dog is keyed by its name, which is chosen by the caller on creation.
type Dog struct {
	Name   string `json:"name" param:"name,required"`
	Breed  string `json:"breed" param:"breed,required"`
	Gender string `json:"gender" param:"gender,required"`
}

func (d *Dog) Key() string {
	return d.Name
}

// UpdateFrom overwrites breed and gender. The name is never reassigned.
func (d *Dog) UpdateFrom(other Dog) {
	d.Breed = other.Breed
	d.Gender = other.Gender
}
