package categories

import (
	"context"
	"slices"
	"strconv"

	"cookbook/db"
	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"
)

type Service struct {
	categories *db.Collection[models.Category]
	events     mq.Emitter
}

func NewService(store *db.Store, events mq.Emitter) *Service {
	return &Service{
		categories: db.NewCollection[models.Category](store, db.CategoriesCollection),
		events:     events,
	}
}

func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.All(ctx)
}

func (s *Service) Create(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	var created models.Category
	err := s.categories.Mutate(ctx, func(all []models.Category) ([]models.Category, error) {
		created = models.Category{ID: nextID(all), Category: in.Category}
		return append(all, created), nil
	})
	if err != nil {
		return models.Category{}, err
	}
	s.events.Emit(ctx, db.CategoriesCollection, "create", strconv.Itoa(created.ID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, in models.CategoryInput) (models.Category, error) {
	var updated models.Category
	err := s.categories.Mutate(ctx, func(all []models.Category) ([]models.Category, error) {
		i := slices.IndexFunc(all, func(c models.Category) bool { return c.ID == id })
		if i < 0 {
			return nil, utils.NotFound("Category not found")
		}
		all[i].Category = in.Category
		updated = all[i]
		return all, nil
	})
	if err != nil {
		return models.Category{}, err
	}
	s.events.Emit(ctx, db.CategoriesCollection, "update", strconv.Itoa(id))
	return updated, nil
}

// Delete removes the category if present. Deleting an unknown id succeeds.
func (s *Service) Delete(ctx context.Context, id int) error {
	removed := false
	err := s.categories.Mutate(ctx, func(all []models.Category) ([]models.Category, error) {
		kept := slices.DeleteFunc(all, func(c models.Category) bool { return c.ID == id })
		removed = len(kept) < len(all)
		return kept, nil
	})
	if err != nil {
		return err
	}
	if removed {
		s.events.Emit(ctx, db.CategoriesCollection, "delete", strconv.Itoa(id))
	}
	return nil
}

func nextID(all []models.Category) int {
	maxID := 0
	for _, c := range all {
		maxID = max(maxID, c.ID)
	}
	return maxID + 1
}
