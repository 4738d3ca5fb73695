package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RecipeRef is a recipe id as referenced from other collections. Clients send
// it either as a JSON number or a string; it is always stored as a string.
type RecipeRef string

func (r *RecipeRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RecipeRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = RecipeRef(n.String())
	return nil
}

func (r RecipeRef) String() string { return string(r) }

// RecipeRefFromID formats a numeric recipe id as a reference.
func RecipeRefFromID(id int) RecipeRef {
	return RecipeRef(strconv.Itoa(id))
}

type Recipe struct {
	ID          int      `json:"id"`
	UserID      string   `json:"userId"`
	Name        string   `json:"name"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients"`
	Instruction string   `json:"instruction"`
	CookingTime string   `json:"cookingTime"`
	People      int      `json:"people"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

func (r Recipe) Ref() RecipeRef {
	return RecipeRefFromID(r.ID)
}

// RecipeDetail is a recipe as returned by a single read.
type RecipeDetail struct {
	Recipe
	IsLiked       bool `json:"isLiked"`
	LikesCount    int  `json:"likesCount"`
	CommentsCount int  `json:"commentsCount"`
}

type CreateRecipe struct {
	UserID      string   `json:"userId"`
	Name        string   `json:"name" validate:"required,notblank"`
	Author      string   `json:"author"`
	Category    string   `json:"category" validate:"required,notblank"`
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,notblank"`
	Instruction string   `json:"instruction" validate:"required,notblank"`
	CookingTime string   `json:"cookingTime"`
	People      int      `json:"people" validate:"gte=0"`
}

// UpdateRecipe lists the mutable recipe fields. Nil means unchanged.
type UpdateRecipe struct {
	Name        *string   `json:"name" validate:"omitnil,notblank"`
	Author      *string   `json:"author"`
	Category    *string   `json:"category" validate:"omitnil,notblank"`
	Image       *string   `json:"image"`
	Ingredients *[]string `json:"ingredients" validate:"omitnil,min=1,dive,notblank"`
	Instruction *string   `json:"instruction" validate:"omitnil,notblank"`
	CookingTime *string   `json:"cookingTime"`
	People      *int      `json:"people" validate:"omitnil,gte=0"`
}

// Apply merges the non-nil fields of u into r. ID, UserID and CreatedAt are
// never touched.
func (u UpdateRecipe) Apply(r *Recipe) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Author != nil {
		r.Author = *u.Author
	}
	if u.Category != nil {
		r.Category = *u.Category
	}
	if u.Image != nil {
		r.Image = *u.Image
	}
	if u.Ingredients != nil {
		r.Ingredients = append([]string(nil), (*u.Ingredients)...)
	}
	if u.Instruction != nil {
		r.Instruction = *u.Instruction
	}
	if u.CookingTime != nil {
		r.CookingTime = *u.CookingTime
	}
	if u.People != nil {
		r.People = *u.People
	}
}

// RecipeSuggestion is the projection returned by the suggestions endpoint.
type RecipeSuggestion struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
