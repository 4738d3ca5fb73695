package comments

import (
	"context"
	"slices"
	"time"

	"cookbook/db"
	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"
)

// RecipeLookup resolves the recipe a comment points at.
type RecipeLookup interface {
	Lookup(ctx context.Context, ref models.RecipeRef) (models.Recipe, error)
}

type Service struct {
	comments *db.Collection[models.Comment]
	recipes  RecipeLookup
	events   mq.Emitter
	now      func() time.Time
	newID    func(prefix string) string
}

func NewService(store *db.Store, recipes RecipeLookup, events mq.Emitter) *Service {
	return &Service{
		comments: db.NewCollection[models.Comment](store, db.CommentsCollection),
		recipes:  recipes,
		events:   events,
		now:      time.Now,
		newID:    utils.NewID,
	}
}

// ListByRecipe returns the comments on recipeID in the order they were made.
func (s *Service) ListByRecipe(ctx context.Context, recipeID models.RecipeRef) ([]models.Comment, error) {
	return s.comments.Filter(ctx, func(c models.Comment) bool { return c.RecipeID == recipeID })
}

func (s *Service) Create(ctx context.Context, in models.CreateComment) (models.Comment, error) {
	recipe, err := s.recipes.Lookup(ctx, in.RecipeID)
	if err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        s.newID("comment"),
		RecipeID:  recipe.Ref(),
		AuthorID:  in.AuthorID,
		Content:   in.Content,
		CreatedAt: utils.ISOTime(s.now()),
	}
	err = s.comments.Mutate(ctx, func(all []models.Comment) ([]models.Comment, error) {
		return append(all, comment), nil
	})
	if err != nil {
		return models.Comment{}, err
	}
	s.events.Emit(ctx, db.CommentsCollection, "create", comment.ID)
	return comment, nil
}

// Delete removes the comment if present. Deleting an unknown id succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	removed := false
	err := s.comments.Mutate(ctx, func(all []models.Comment) ([]models.Comment, error) {
		kept := slices.DeleteFunc(all, func(c models.Comment) bool { return c.ID == id })
		removed = len(kept) < len(all)
		return kept, nil
	})
	if err != nil {
		return err
	}
	if removed {
		s.events.Emit(ctx, db.CommentsCollection, "delete", id)
	}
	return nil
}
