package recipes

import (
	"context"
	"slices"
	"strconv"
	"time"

	"cookbook/db"
	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"
)

type Service struct {
	recipes  *db.Collection[models.Recipe]
	likes    *db.Collection[models.Like]
	comments *db.Collection[models.Comment]
	events   mq.Emitter
	now      func() time.Time
}

func NewService(store *db.Store, events mq.Emitter) *Service {
	return &Service{
		recipes:  db.NewCollection[models.Recipe](store, db.RecipesCollection),
		likes:    db.NewCollection[models.Like](store, db.LikesCollection),
		comments: db.NewCollection[models.Comment](store, db.CommentsCollection),
		events:   events,
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.All(ctx)
}

// ListByUser returns the recipes owned by userID.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Recipe, error) {
	return s.recipes.Filter(ctx, func(r models.Recipe) bool { return r.UserID == userID })
}

// Get returns a recipe with its like and comment counts. isLiked is true
// only when viewerID is known and has liked the recipe.
func (s *Service) Get(ctx context.Context, id int, viewerID string) (models.RecipeDetail, error) {
	recipe, ok, err := s.recipes.Find(ctx, func(r models.Recipe) bool { return r.ID == id })
	if err != nil {
		return models.RecipeDetail{}, err
	}
	if !ok {
		return models.RecipeDetail{}, utils.NotFound("Recipe not found")
	}

	ref := recipe.Ref()
	likes, err := s.likes.Filter(ctx, func(l models.Like) bool { return l.RecipeID == ref })
	if err != nil {
		return models.RecipeDetail{}, err
	}
	comments, err := s.comments.Filter(ctx, func(c models.Comment) bool { return c.RecipeID == ref })
	if err != nil {
		return models.RecipeDetail{}, err
	}

	detail := models.RecipeDetail{
		Recipe:        recipe,
		LikesCount:    len(likes),
		CommentsCount: len(comments),
	}
	if viewerID != "" {
		detail.IsLiked = slices.ContainsFunc(likes, func(l models.Like) bool { return l.UserID == viewerID })
	}
	return detail, nil
}

// Lookup resolves a reference from another collection. Unknown or
// non-numeric references report a NotFound error.
func (s *Service) Lookup(ctx context.Context, ref models.RecipeRef) (models.Recipe, error) {
	id, err := strconv.Atoi(ref.String())
	if err != nil {
		return models.Recipe{}, utils.NotFound("Recipe not found")
	}
	recipe, ok, err := s.recipes.Find(ctx, func(r models.Recipe) bool { return r.ID == id })
	if err != nil {
		return models.Recipe{}, err
	}
	if !ok {
		return models.Recipe{}, utils.NotFound("Recipe not found")
	}
	return recipe, nil
}

// Index returns all recipes keyed by reference.
func (s *Service) Index(ctx context.Context) (map[models.RecipeRef]models.Recipe, error) {
	all, err := s.recipes.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[models.RecipeRef]models.Recipe, len(all))
	for _, r := range all {
		idx[r.Ref()] = r
	}
	return idx, nil
}

func (s *Service) Create(ctx context.Context, in models.CreateRecipe) (models.Recipe, error) {
	var created models.Recipe
	err := s.recipes.Mutate(ctx, func(all []models.Recipe) ([]models.Recipe, error) {
		created = models.Recipe{
			ID:          nextID(all),
			UserID:      in.UserID,
			Name:        in.Name,
			Author:      in.Author,
			Category:    in.Category,
			Image:       in.Image,
			Ingredients: in.Ingredients,
			Instruction: in.Instruction,
			CookingTime: in.CookingTime,
			People:      in.People,
			CreatedAt:   utils.ISOTime(s.now()),
		}
		return append(all, created), nil
	})
	if err != nil {
		return models.Recipe{}, err
	}
	s.events.Emit(ctx, db.RecipesCollection, "create", strconv.Itoa(created.ID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, in models.UpdateRecipe) (models.Recipe, error) {
	var updated models.Recipe
	err := s.recipes.Mutate(ctx, func(all []models.Recipe) ([]models.Recipe, error) {
		i := slices.IndexFunc(all, func(r models.Recipe) bool { return r.ID == id })
		if i < 0 {
			return nil, utils.NotFound("Recipe not found")
		}
		in.Apply(&all[i])
		updated = all[i]
		return all, nil
	})
	if err != nil {
		return models.Recipe{}, err
	}
	s.events.Emit(ctx, db.RecipesCollection, "update", strconv.Itoa(id))
	return updated, nil
}

// Delete removes the recipe if present. Comments, likes and saved entries
// that point at it are left in place.
func (s *Service) Delete(ctx context.Context, id int) error {
	removed := false
	err := s.recipes.Mutate(ctx, func(all []models.Recipe) ([]models.Recipe, error) {
		kept := slices.DeleteFunc(all, func(r models.Recipe) bool { return r.ID == id })
		removed = len(kept) < len(all)
		return kept, nil
	})
	if err != nil {
		return err
	}
	if removed {
		s.events.Emit(ctx, db.RecipesCollection, "delete", strconv.Itoa(id))
	}
	return nil
}

func nextID(all []models.Recipe) int {
	maxID := 0
	for _, r := range all {
		maxID = max(maxID, r.ID)
	}
	return maxID + 1
}
