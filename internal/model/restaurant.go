package model

const KindRestaurant = "Restaurant"

type Restaurant struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" param:"name,required"`
	Description string `json:"description" param:"description,required"`
}

func (r *Restaurant) Key() int64 {
	return r.ID
}

func (r *Restaurant) AssignKey(id int64) {
	r.ID = id
}

func (r *Restaurant) UpdateFrom(other Restaurant) {
	r.Name = other.Name
	r.Description = other.Description
}
