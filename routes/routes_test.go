package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookbook/db"
	"cookbook/middleware"
	"cookbook/mq"
	"cookbook/ratelim"
)

var secret = []byte("routes-secret")

type client struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func newClient(t *testing.T, opts Options) *client {
	t.Helper()
	b, err := db.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	router := NewRouter(db.NewStore(b), mq.LogEmitter{}, opts)
	srv := httptest.NewServer(middleware.MaxBytes(1<<20)(router))
	t.Cleanup(srv.Close)
	return &client{t: t, server: srv}
}

func (c *client) do(method, path, body string) (int, []byte) {
	c.t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.server.URL+path, rd)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

const phoBody = `{"userId":"u1","name":"Beef Pho","category":"Soup","ingredients":["beef","noodles"],"instruction":"Simmer"}`

func TestHealth(t *testing.T) {
	c := newClient(t, Options{})
	code, body := c.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", string(body))

	code, _ = c.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestCategoriesEndpoints(t *testing.T) {
	c := newClient(t, Options{})

	code, body := c.do(http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))

	code, body = c.do(http.MethodPost, "/api/categories", `{"category":"Soup"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"id":1,"category":"Soup"}`, string(body))

	code, body = c.do(http.MethodPost, "/api/categories", `{"category":" "}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.JSONEq(t, `{"error":"category is required"}`, string(body))

	code, body = c.do(http.MethodPut, "/api/categories/1", `{"category":"Soups"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id":1,"category":"Soups"}`, string(body))

	code, body = c.do(http.MethodPut, "/api/categories/9", `{"category":"x"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"error":"Category not found"}`, string(body))

	code, _ = c.do(http.MethodPut, "/api/categories/abc", `{"category":"x"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = c.do(http.MethodDelete, "/api/categories/9", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"Category deleted"}`, string(body))

	_, body = c.do(http.MethodGet, "/api/categories", "")
	assert.JSONEq(t, `[{"id":1,"category":"Soups"}]`, string(body))

	code, body = c.do(http.MethodPost, "/api/categories", `{"category":`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.JSONEq(t, `{"error":"Invalid JSON"}`, string(body))
}

func TestRecipeEndpoints(t *testing.T) {
	c := newClient(t, Options{JWTSecret: secret})

	code, body := c.do(http.MethodPost, "/api/recipes", phoBody)
	require.Equal(t, http.StatusCreated, code, string(body))
	created := decode[map[string]any](t, body)
	assert.Equal(t, float64(1), created["id"])
	assert.NotEmpty(t, created["createdAt"])
	for _, field := range []string{"people", "image", "author", "cookingTime"} {
		assert.Contains(t, created, field)
	}
	assert.Equal(t, float64(0), created["people"])

	code, _ = c.do(http.MethodPost, "/api/recipes", `{"name":"x","category":"y","instruction":"z"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = c.do(http.MethodGet, "/api/recipes/1", "")
	assert.Equal(t, http.StatusOK, code)
	detail := decode[map[string]any](t, body)
	assert.Equal(t, false, detail["isLiked"])
	assert.Equal(t, float64(0), detail["likesCount"])

	code, _ = c.do(http.MethodGet, "/api/recipes/2", "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = c.do(http.MethodGet, "/api/recipes/abc", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = c.do(http.MethodGet, "/api/recipes/user/u1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, body), 1)

	_, body = c.do(http.MethodGet, "/api/recipes/user/u2", "")
	assert.JSONEq(t, `[]`, string(body))

	code, body = c.do(http.MethodPut, "/api/recipes/1", `{"name":"Chicken Pho","userId":"thief"}`)
	assert.Equal(t, http.StatusOK, code)
	updated := decode[map[string]any](t, body)
	assert.Equal(t, "Chicken Pho", updated["name"])
	assert.Equal(t, "u1", updated["userId"])
	assert.Equal(t, "Soup", updated["category"])

	code, _ = c.do(http.MethodPut, "/api/recipes/1", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, code)

	// isLiked follows the bearer token
	code, _ = c.do(http.MethodPost, "/api/likes", `{"recipeId":1,"userId":"u2"}`)
	require.Equal(t, http.StatusCreated, code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		UserID:           "u2",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	c.token, _ = token.SignedString(secret)
	_, body = c.do(http.MethodGet, "/api/recipes/1", "")
	detail = decode[map[string]any](t, body)
	assert.Equal(t, true, detail["isLiked"])
	assert.Equal(t, float64(1), detail["likesCount"])
	c.token = ""

	code, body = c.do(http.MethodDelete, "/api/recipes/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"Recipe deleted"}`, string(body))

	_, body = c.do(http.MethodGet, "/api/recipes", "")
	assert.JSONEq(t, `[]`, string(body))
}

func TestSocialEndpoints(t *testing.T) {
	c := newClient(t, Options{})
	code, _ := c.do(http.MethodPost, "/api/recipes", phoBody)
	require.Equal(t, http.StatusCreated, code)

	// comments
	code, body := c.do(http.MethodPost, "/api/comments", `{"recipeId":"1","authorId":"u2","content":"Yum"}`)
	require.Equal(t, http.StatusCreated, code)
	comment := decode[map[string]any](t, body)
	assert.Equal(t, "1", comment["recipeId"])

	code, _ = c.do(http.MethodPost, "/api/comments", `{"recipeId":"7","authorId":"u2","content":"Yum"}`)
	assert.Equal(t, http.StatusNotFound, code)

	_, body = c.do(http.MethodGet, "/api/comments/1", "")
	assert.Len(t, decode[[]map[string]any](t, body), 1)

	code, body = c.do(http.MethodDelete, "/api/comments/"+comment["id"].(string), "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"Comment deleted"}`, string(body))

	// likes
	code, _ = c.do(http.MethodPost, "/api/likes", `{"recipeId":"1","userId":"u2"}`)
	assert.Equal(t, http.StatusCreated, code)
	code, body = c.do(http.MethodPost, "/api/likes", `{"recipeId":1,"userId":"u2"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.JSONEq(t, `{"error":"User already liked this recipe"}`, string(body))

	_, body = c.do(http.MethodGet, "/api/likes/1", "")
	assert.Len(t, decode[[]map[string]any](t, body), 1)

	code, _ = c.do(http.MethodDelete, "/api/likes/1/u2", "")
	assert.Equal(t, http.StatusOK, code)
	_, body = c.do(http.MethodGet, "/api/likes/1", "")
	assert.JSONEq(t, `[]`, string(body))

	// users and follows
	code, _ = c.do(http.MethodPost, "/api/users", `{"uid":"a","displayName":"Ana"}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = c.do(http.MethodPost, "/api/users", `{"uid":"b"}`)
	require.Equal(t, http.StatusCreated, code)
	code, body = c.do(http.MethodPost, "/api/users", `{"uid":"a"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.JSONEq(t, `{"error":"User already exists"}`, string(body))

	code, _ = c.do(http.MethodPost, "/api/follows", `{"followerId":"a","followingId":"b"}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = c.do(http.MethodPost, "/api/follows", `{"followerId":"a","followingId":"b"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	_, body = c.do(http.MethodGet, "/api/follows/a", "")
	graph := decode[map[string][]map[string]any](t, body)
	assert.Len(t, graph["following"], 1)
	assert.Empty(t, graph["followers"])

	_, body = c.do(http.MethodGet, "/api/users/a", "")
	assert.Equal(t, float64(1), decode[map[string]any](t, body)["kitchenFriends"])
	_, body = c.do(http.MethodGet, "/api/users/b", "")
	assert.Equal(t, float64(1), decode[map[string]any](t, body)["followers"])

	code, body = c.do(http.MethodPut, "/api/users/a", `{"bio":"new bio"}`)
	assert.Equal(t, http.StatusOK, code)
	user := decode[map[string]any](t, body)
	assert.Equal(t, "new bio", user["bio"])
	assert.Equal(t, "a", user["uid"])
	assert.Equal(t, float64(1), user["kitchenFriends"])

	code, _ = c.do(http.MethodPut, "/api/users/a", `{"email":"ana@example.com"}`)
	assert.Equal(t, http.StatusOK, code)
	code, body = c.do(http.MethodPut, "/api/users/a", `{"email":""}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "", decode[map[string]any](t, body)["email"])
	code, body = c.do(http.MethodPut, "/api/users/a", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.JSONEq(t, `{"error":"email must be a valid email address"}`, string(body))

	code, _ = c.do(http.MethodGet, "/api/users/zzz", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = c.do(http.MethodDelete, "/api/follows/a/b", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"Unfollowed successfully"}`, string(body))
	_, body = c.do(http.MethodGet, "/api/users/b", "")
	assert.Equal(t, float64(0), decode[map[string]any](t, body)["followers"])

	// saved recipes
	code, _ = c.do(http.MethodPost, "/api/saved-recipes", `{"userId":"a","recipeId":1}`)
	assert.Equal(t, http.StatusCreated, code)
	code, body = c.do(http.MethodPost, "/api/saved-recipes", `{"userId":"a","recipeId":"1"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.JSONEq(t, `{"error":"Recipe already saved"}`, string(body))

	code, _ = c.do(http.MethodGet, "/api/saved-recipes", "")
	assert.Equal(t, http.StatusBadRequest, code)
	_, body = c.do(http.MethodGet, "/api/saved-recipes?userId=a", "")
	saved := decode[[]map[string]any](t, body)
	require.Len(t, saved, 1)
	assert.Equal(t, "Beef Pho", saved[0]["recipeTitle"])

	code, body = c.do(http.MethodDelete, "/api/saved-recipes?userId=a&recipeId=1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"Recipe removed from saved"}`, string(body))
	_, body = c.do(http.MethodGet, "/api/saved-recipes?userId=a", "")
	assert.JSONEq(t, `[]`, string(body))
}

func TestQueryEndpoints(t *testing.T) {
	c := newClient(t, Options{})
	for _, body := range []string{
		phoBody,
		`{"name":"Chicken Soup","category":"Soup","ingredients":["chicken","broth"],"instruction":"Boil"}`,
	} {
		code, _ := c.do(http.MethodPost, "/api/recipes", body)
		require.Equal(t, http.StatusCreated, code)
	}

	_, body := c.do(http.MethodGet, "/api/search?query=beef+noodles", "")
	results := decode[[]map[string]any](t, body)
	require.Len(t, results, 1)
	assert.Equal(t, "Beef Pho", results[0]["name"])

	_, body = c.do(http.MethodGet, "/api/search?query=beef+broth", "")
	assert.JSONEq(t, `[]`, string(body))

	_, body = c.do(http.MethodGet, "/api/search", "")
	assert.JSONEq(t, `[]`, string(body))

	_, body = c.do(http.MethodGet, "/api/suggestions?query=soup", "")
	assert.JSONEq(t, `[{"id":1,"name":"Beef Pho","category":"Soup"},{"id":2,"name":"Chicken Soup","category":"Soup"}]`, string(body))
}

func TestWritesAreRateLimited(t *testing.T) {
	c := newClient(t, Options{RateLimiter: ratelim.NewRateLimiter(0.001, 1)})

	code, _ := c.do(http.MethodPost, "/api/categories", `{"category":"a"}`)
	assert.Equal(t, http.StatusCreated, code)
	code, _ = c.do(http.MethodPost, "/api/categories", `{"category":"b"}`)
	assert.Equal(t, http.StatusTooManyRequests, code)

	code, _ = c.do(http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, code)
}
