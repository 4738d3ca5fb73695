package search

import (
	"context"
	"strings"

	"cookbook/models"
)

// Recipes supplies the collection being searched.
type Recipes interface {
	List(ctx context.Context) ([]models.Recipe, error)
}

type Service struct {
	recipes Recipes
}

func NewService(recipes Recipes) *Service {
	return &Service{recipes: recipes}
}

// Search returns the recipes whose text contains the whole query or every
// term of it, in collection order. An empty query matches nothing.
func (s *Service) Search(ctx context.Context, query string) ([]models.Recipe, error) {
	terms := Tokenize(query)
	if len(terms) == 0 {
		return []models.Recipe{}, nil
	}
	phrase := strings.Join(terms, " ")

	all, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Recipe{}
	for _, r := range all {
		text := searchableText(r)
		if strings.Contains(text, phrase) || containsAll(text, terms) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Tokenize lowercases the query and splits it on runs of whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

func searchableText(r models.Recipe) string {
	parts := make([]string, 0, 4+len(r.Ingredients))
	for _, p := range []string{r.Name, r.Author, r.Category} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	for _, ing := range r.Ingredients {
		if ing != "" {
			parts = append(parts, ing)
		}
	}
	if r.Instruction != "" {
		parts = append(parts, r.Instruction)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func containsAll(text string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}
