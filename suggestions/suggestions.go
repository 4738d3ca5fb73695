package suggestions

import (
	"context"
	"slices"
	"strings"

	"cookbook/models"
)

// Limit is the most suggestions returned for one query.
const Limit = 4

type Recipes interface {
	List(ctx context.Context) ([]models.Recipe, error)
}

type Service struct {
	recipes Recipes
}

func NewService(recipes Recipes) *Service {
	return &Service{recipes: recipes}
}

// Suggest returns up to Limit recipes whose name, category, ingredients or
// instruction contain query. An empty query returns the first recipes.
func (s *Service) Suggest(ctx context.Context, query string) ([]models.RecipeSuggestion, error) {
	all, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.RecipeSuggestion, 0, Limit)
	for _, r := range all {
		if len(out) == Limit {
			break
		}
		if q == "" || matches(r, q) {
			out = append(out, models.RecipeSuggestion{ID: r.ID, Name: r.Name, Category: r.Category})
		}
	}
	return out, nil
}

func matches(r models.Recipe, q string) bool {
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), q) }
	return contains(r.Name) ||
		contains(r.Category) ||
		slices.ContainsFunc(r.Ingredients, contains) ||
		contains(r.Instruction)
}
