package models

type Comment struct {
	ID        string    `json:"id"`
	RecipeID  RecipeRef `json:"recipeId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"createdAt"`
}

type CreateComment struct {
	RecipeID RecipeRef `json:"recipeId" validate:"required"`
	AuthorID string    `json:"authorId" validate:"required,notblank"`
	Content  string    `json:"content" validate:"required,notblank"`
}

type Like struct {
	ID        string    `json:"id"`
	RecipeID  RecipeRef `json:"recipeId"`
	UserID    string    `json:"userId"`
	CreatedAt string    `json:"createdAt"`
}

type CreateLike struct {
	RecipeID RecipeRef `json:"recipeId" validate:"required"`
	UserID   string    `json:"userId" validate:"required,notblank"`
}

type Follow struct {
	ID          string `json:"id"`
	FollowerID  string `json:"followerId"`
	FollowingID string `json:"followingId"`
	CreatedAt   string `json:"createdAt"`
}

type CreateFollow struct {
	FollowerID  string `json:"followerId" validate:"required,notblank"`
	FollowingID string `json:"followingId" validate:"required,notblank"`
}

// FollowGraph partitions a user's follow records.
type FollowGraph struct {
	Following []Follow `json:"following"`
	Followers []Follow `json:"followers"`
}

type SavedRecipe struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	RecipeID RecipeRef `json:"recipeId"`
	SavedAt  string    `json:"savedAt"`
}

// SavedRecipeView is a saved entry with display fields of the recipe it
// points at.
type SavedRecipeView struct {
	SavedRecipe
	RecipeTitle string `json:"recipeTitle,omitempty"`
	RecipeImage string `json:"recipeImage,omitempty"`
}

type CreateSavedRecipe struct {
	UserID   string    `json:"userId" validate:"required,notblank"`
	RecipeID RecipeRef `json:"recipeId" validate:"required"`
}
