package suggestions

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookbook/models"
)

type staticRecipes []models.Recipe

func (s staticRecipes) List(context.Context) ([]models.Recipe, error) {
	return s, nil
}

func soups(n int) staticRecipes {
	out := make(staticRecipes, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Recipe{
			ID:          i,
			Name:        fmt.Sprintf("Soup %d", i),
			Author:      "Chef",
			Category:    "Soups",
			Ingredients: []string{"water"},
			Instruction: "Boil",
		})
	}
	return out
}

func TestSuggestCapsAndProjects(t *testing.T) {
	svc := NewService(soups(10))

	got, err := svc.Suggest(context.Background(), "soup")
	require.NoError(t, err)
	assert.Equal(t, []models.RecipeSuggestion{
		{ID: 1, Name: "Soup 1", Category: "Soups"},
		{ID: 2, Name: "Soup 2", Category: "Soups"},
		{ID: 3, Name: "Soup 3", Category: "Soups"},
		{ID: 4, Name: "Soup 4", Category: "Soups"},
	}, got)
}

func TestSuggestEmptyQueryReturnsFirstRecipes(t *testing.T) {
	svc := NewService(soups(6))

	got, err := svc.Suggest(context.Background(), "   ")
	require.NoError(t, err)
	require.Len(t, got, Limit)
	assert.Equal(t, 1, got[0].ID)
}

func TestSuggestMatchesEachField(t *testing.T) {
	recipes := staticRecipes{
		{ID: 1, Name: "Pho", Category: "Vietnamese"},
		{ID: 2, Name: "Stew", Category: "Winter", Ingredients: []string{"Lamb"}},
		{ID: 3, Name: "Toast", Instruction: "Grill the bread"},
		{ID: 4, Name: "Plain"},
	}
	svc := NewService(recipes)
	ctx := context.Background()

	for query, want := range map[string]int{"PHO": 1, "viet": 1, "lamb": 2, "grill": 3} {
		got, err := svc.Suggest(ctx, query)
		require.NoError(t, err)
		require.Len(t, got, 1, query)
		assert.Equal(t, want, got[0].ID, query)
	}

	got, err := svc.Suggest(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
}
