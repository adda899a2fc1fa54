package dto

type CategoryItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
