package models

// Change describes a committed mutation of a collection.
type Change struct {
	Collection string `json:"collection"`
	Method     string `json:"method"` // create, update, delete
	ID         string `json:"id"`
	At         string `json:"at"`
}
