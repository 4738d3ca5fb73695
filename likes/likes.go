package likes

import (
	"context"
	"slices"
	"time"

	"cookbook/db"
	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"
)

// RecipeLookup resolves the recipe a like points at.
type RecipeLookup interface {
	Lookup(ctx context.Context, ref models.RecipeRef) (models.Recipe, error)
}

type Service struct {
	likes   *db.Collection[models.Like]
	recipes RecipeLookup
	events  mq.Emitter
	now     func() time.Time
	newID   func(prefix string) string
}

func NewService(store *db.Store, recipes RecipeLookup, events mq.Emitter) *Service {
	return &Service{
		likes:   db.NewCollection[models.Like](store, db.LikesCollection),
		recipes: recipes,
		events:  events,
		now:     time.Now,
		newID:   utils.NewID,
	}
}

func (s *Service) ListByRecipe(ctx context.Context, recipeID models.RecipeRef) ([]models.Like, error) {
	return s.likes.Filter(ctx, func(l models.Like) bool { return l.RecipeID == recipeID })
}

// Create records that in.UserID likes in.RecipeID. A second like for the
// same pair is a Conflict.
func (s *Service) Create(ctx context.Context, in models.CreateLike) (models.Like, error) {
	recipe, err := s.recipes.Lookup(ctx, in.RecipeID)
	if err != nil {
		return models.Like{}, err
	}
	ref := recipe.Ref()

	like := models.Like{
		ID:        s.newID("like"),
		RecipeID:  ref,
		UserID:    in.UserID,
		CreatedAt: utils.ISOTime(s.now()),
	}
	err = s.likes.Mutate(ctx, func(all []models.Like) ([]models.Like, error) {
		if slices.ContainsFunc(all, samePair(ref, in.UserID)) {
			return nil, utils.Conflict("User already liked this recipe")
		}
		return append(all, like), nil
	})
	if err != nil {
		return models.Like{}, err
	}
	s.events.Emit(ctx, db.LikesCollection, "create", like.ID)
	return like, nil
}

// Delete removes the like for the pair if present.
func (s *Service) Delete(ctx context.Context, recipeID models.RecipeRef, userID string) error {
	var removed []string
	err := s.likes.Mutate(ctx, func(all []models.Like) ([]models.Like, error) {
		match := samePair(recipeID, userID)
		for _, l := range all {
			if match(l) {
				removed = append(removed, l.ID)
			}
		}
		return slices.DeleteFunc(all, match), nil
	})
	if err != nil {
		return err
	}
	for _, id := range removed {
		s.events.Emit(ctx, db.LikesCollection, "delete", id)
	}
	return nil
}

func samePair(recipeID models.RecipeRef, userID string) func(models.Like) bool {
	return func(l models.Like) bool {
		return l.RecipeID == recipeID && l.UserID == userID
	}
}
