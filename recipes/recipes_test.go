package recipes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookbook/db"
	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"
)

func newTestService(t *testing.T) (*Service, *db.Store) {
	t.Helper()
	store := db.NewStore(db.NewMemoryBackend())
	svc := NewService(store, mq.LogEmitter{})
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, store
}

func pho() models.CreateRecipe {
	return models.CreateRecipe{
		UserID:      "u1",
		Name:        "Beef Pho",
		Author:      "Lan",
		Category:    "Soup",
		Ingredients: []string{"beef", "noodles"},
		Instruction: "Simmer the broth.",
		CookingTime: "3h",
		People:      4,
	}
}

func TestCreateIDsAreOneToN(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		r, err := svc.Create(ctx, pho())
		require.NoError(t, err)
		assert.Equal(t, i, r.ID)
		assert.Equal(t, "2024-03-01T12:00:00.000Z", r.CreatedAt)
	}
}

func TestCreateRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, pho())
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])

	detail, err := svc.Get(ctx, created.ID, "")
	require.NoError(t, err)
	assert.Equal(t, created, detail.Recipe)
	assert.False(t, detail.IsLiked)
}

func TestGetCountsAndIsLiked(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, pho())
	require.NoError(t, err)

	likes := db.NewCollection[models.Like](store, db.LikesCollection)
	require.NoError(t, likes.Mutate(ctx, func(all []models.Like) ([]models.Like, error) {
		return append(all,
			models.Like{ID: "like_1", RecipeID: r.Ref(), UserID: "u2"},
			models.Like{ID: "like_2", RecipeID: "99", UserID: "u3"},
		), nil
	}))
	comments := db.NewCollection[models.Comment](store, db.CommentsCollection)
	require.NoError(t, comments.Mutate(ctx, func(all []models.Comment) ([]models.Comment, error) {
		return append(all, models.Comment{ID: "comment_1", RecipeID: r.Ref(), AuthorID: "u2", Content: "yum"}), nil
	}))

	detail, err := svc.Get(ctx, r.ID, "u2")
	require.NoError(t, err)
	assert.True(t, detail.IsLiked)
	assert.Equal(t, 1, detail.LikesCount)
	assert.Equal(t, 1, detail.CommentsCount)

	detail, err = svc.Get(ctx, r.ID, "u3")
	require.NoError(t, err)
	assert.False(t, detail.IsLiked)

	_, err = svc.Get(ctx, 404, "")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListByUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in := pho()
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)
	in.UserID = "u2"
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 2, mine[0].ID)

	none, err := svc.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateMergesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, pho())
	require.NoError(t, err)

	name := "Chicken Pho"
	updated, err := svc.Update(ctx, created.ID, models.UpdateRecipe{Name: &name})
	require.NoError(t, err)

	want := created
	want.Name = name
	assert.Equal(t, want, updated)

	_, err = svc.Update(ctx, 77, models.UpdateRecipe{Name: &name})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestDeleteAndLookup(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, pho())
	require.NoError(t, err)

	got, err := svc.Lookup(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, r.Name, got.Name)

	_, err = svc.Lookup(ctx, "abc")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	idx, err := svc.Index(ctx)
	require.NoError(t, err)
	assert.Contains(t, idx, models.RecipeRef("1"))

	require.NoError(t, svc.Delete(ctx, r.ID))
	require.NoError(t, svc.Delete(ctx, r.ID))

	_, err = svc.Lookup(ctx, "1")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

type deleteCounter struct {
	deletes []string
}

func (d *deleteCounter) Emit(_ context.Context, _, method, id string) {
	if method == "delete" {
		d.deletes = append(d.deletes, id)
	}
}

func TestDeleteEmitsOnlyOnRemoval(t *testing.T) {
	svc, _ := newTestService(t)
	events := &deleteCounter{}
	svc.events = events
	ctx := context.Background()

	_, err := svc.Create(ctx, pho())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 5))
	assert.Empty(t, events.deletes)

	require.NoError(t, svc.Delete(ctx, 1))
	require.NoError(t, svc.Delete(ctx, 1))
	assert.Equal(t, []string{"1"}, events.deletes)
}
