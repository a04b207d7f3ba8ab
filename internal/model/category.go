package model

type Category struct {
	BaseModel
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
