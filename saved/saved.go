package saved

import (
	"context"
	"slices"
	"time"

	"cookbook/db"
	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"
)

// Recipes is the part of the recipe service saved entries depend on.
type Recipes interface {
	Lookup(ctx context.Context, ref models.RecipeRef) (models.Recipe, error)
	Index(ctx context.Context) (map[models.RecipeRef]models.Recipe, error)
}

type Service struct {
	saved   *db.Collection[models.SavedRecipe]
	recipes Recipes
	events  mq.Emitter
	now     func() time.Time
	newID   func(prefix string) string
}

func NewService(store *db.Store, recipes Recipes, events mq.Emitter) *Service {
	return &Service{
		saved:   db.NewCollection[models.SavedRecipe](store, db.SavedRecipesCollection),
		recipes: recipes,
		events:  events,
		now:     time.Now,
		newID:   utils.NewID,
	}
}

// List returns userID's saved entries, optionally narrowed to one recipe,
// each carrying the title and image of the recipe when it still exists.
func (s *Service) List(ctx context.Context, userID string, recipeID models.RecipeRef) ([]models.SavedRecipeView, error) {
	entries, err := s.saved.Filter(ctx, func(sr models.SavedRecipe) bool {
		return sr.UserID == userID && (recipeID == "" || sr.RecipeID == recipeID)
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []models.SavedRecipeView{}, nil
	}

	index, err := s.recipes.Index(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.SavedRecipeView, 0, len(entries))
	for _, sr := range entries {
		view := models.SavedRecipeView{SavedRecipe: sr}
		if recipe, ok := index[sr.RecipeID]; ok {
			view.RecipeTitle = recipe.Name
			view.RecipeImage = recipe.Image
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) Create(ctx context.Context, in models.CreateSavedRecipe) (models.SavedRecipe, error) {
	recipe, err := s.recipes.Lookup(ctx, in.RecipeID)
	if err != nil {
		return models.SavedRecipe{}, err
	}
	ref := recipe.Ref()

	entry := models.SavedRecipe{
		ID:       s.newID(""),
		UserID:   in.UserID,
		RecipeID: ref,
		SavedAt:  utils.ISOTime(s.now()),
	}
	err = s.saved.Mutate(ctx, func(all []models.SavedRecipe) ([]models.SavedRecipe, error) {
		if slices.ContainsFunc(all, samePair(in.UserID, ref)) {
			return nil, utils.Conflict("Recipe already saved")
		}
		return append(all, entry), nil
	})
	if err != nil {
		return models.SavedRecipe{}, err
	}
	s.events.Emit(ctx, db.SavedRecipesCollection, "create", entry.ID)
	return entry, nil
}

func (s *Service) Delete(ctx context.Context, userID string, recipeID models.RecipeRef) error {
	var removed []string
	err := s.saved.Mutate(ctx, func(all []models.SavedRecipe) ([]models.SavedRecipe, error) {
		match := samePair(userID, recipeID)
		for _, sr := range all {
			if match(sr) {
				removed = append(removed, sr.ID)
			}
		}
		return slices.DeleteFunc(all, match), nil
	})
	if err != nil {
		return err
	}
	for _, id := range removed {
		s.events.Emit(ctx, db.SavedRecipesCollection, "delete", id)
	}
	return nil
}

func samePair(userID string, recipeID models.RecipeRef) func(models.SavedRecipe) bool {
	return func(sr models.SavedRecipe) bool {
		return sr.UserID == userID && sr.RecipeID == recipeID
	}
}
