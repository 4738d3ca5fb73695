package models

type Category struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
}

type CategoryInput struct {
	Category string `json:"category" validate:"required,notblank"`
}
