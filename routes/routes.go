package routes

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cookbook/categories"
	"cookbook/comments"
	"cookbook/db"
	"cookbook/follows"
	"cookbook/likes"
	"cookbook/middleware"
	"cookbook/mq"
	"cookbook/ratelim"
	"cookbook/recipes"
	"cookbook/saved"
	"cookbook/search"
	"cookbook/suggestions"
	"cookbook/users"
)

type Options struct {
	// JWTSecret enables bearer-token identity on recipe reads when set.
	JWTSecret []byte
	// RateLimiter guards the mutating routes. Nil disables limiting.
	RateLimiter *ratelim.RateLimiter
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "ok")
}

// NewRouter builds every service over store and registers the API on a
// fresh router.
func NewRouter(store *db.Store, events mq.Emitter, opts Options) *httprouter.Router {
	recipeSvc := recipes.NewService(store, events)
	userSvc := users.NewService(store, events)

	router := httprouter.New()
	router.GET("/health", Index)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	write := func(h httprouter.Handle) httprouter.Handle {
		if opts.RateLimiter == nil {
			return h
		}
		return opts.RateLimiter.Limit(h)
	}
	auth := middleware.OptionalAuth(opts.JWTSecret)

	AddCategoryRoutes(router, categories.NewHandler(categories.NewService(store, events)), write)
	AddRecipeRoutes(router, recipes.NewHandler(recipeSvc), write, auth)
	AddCommentsRoutes(router, comments.NewHandler(comments.NewService(store, recipeSvc, events)), write)
	AddLikeRoutes(router, likes.NewHandler(likes.NewService(store, recipeSvc, events)), write)
	AddFollowRoutes(router, follows.NewHandler(follows.NewService(store, userSvc, events)), write)
	AddUserRoutes(router, users.NewHandler(userSvc), write)
	AddSavedRoutes(router, saved.NewHandler(saved.NewService(store, recipeSvc, events)), write)
	AddSearchRoutes(router, search.NewHandler(search.NewService(recipeSvc)))
	AddSuggestionsRoutes(router, suggestions.NewHandler(suggestions.NewService(recipeSvc)))

	return router
}

type wrap = func(httprouter.Handle) httprouter.Handle

func AddCategoryRoutes(router *httprouter.Router, h *categories.Handler, write wrap) {
	router.GET("/api/categories", h.GetCategories)
	router.POST("/api/categories", write(h.CreateCategory))
	router.PUT("/api/categories/:id", write(h.UpdateCategory))
	router.DELETE("/api/categories/:id", write(h.DeleteCategory))
}

// AddRecipeRoutes serves both /api/recipes/:id and /api/recipes/user/:userId
// through one catch-all, since the router cannot hold both patterns.
func AddRecipeRoutes(router *httprouter.Router, h *recipes.Handler, write, auth wrap) {
	router.GET("/api/recipes", h.GetRecipes)
	router.GET("/api/recipes/*path", auth(h.GetRecipeOrUserRecipes))
	router.POST("/api/recipes", write(h.CreateRecipe))
	router.PUT("/api/recipes/:id", write(h.UpdateRecipe))
	router.DELETE("/api/recipes/:id", write(h.DeleteRecipe))
}

func AddCommentsRoutes(router *httprouter.Router, h *comments.Handler, write wrap) {
	router.GET("/api/comments/:recipeId", h.GetComments)
	router.POST("/api/comments", write(h.CreateComment))
	router.DELETE("/api/comments/:id", write(h.DeleteComment))
}

func AddLikeRoutes(router *httprouter.Router, h *likes.Handler, write wrap) {
	router.GET("/api/likes/:recipeId", h.GetLikes)
	router.POST("/api/likes", write(h.CreateLike))
	router.DELETE("/api/likes/:recipeId/:userId", write(h.DeleteLike))
}

func AddFollowRoutes(router *httprouter.Router, h *follows.Handler, write wrap) {
	router.GET("/api/follows/:userId", h.GetFollows)
	router.POST("/api/follows", write(h.CreateFollow))
	router.DELETE("/api/follows/:followerId/:followingId", write(h.DeleteFollow))
}

func AddUserRoutes(router *httprouter.Router, h *users.Handler, write wrap) {
	router.GET("/api/users/:uid", h.GetUser)
	router.POST("/api/users", write(h.CreateUser))
	router.PUT("/api/users/:uid", write(h.UpdateUser))
}

func AddSavedRoutes(router *httprouter.Router, h *saved.Handler, write wrap) {
	router.GET("/api/saved-recipes", h.GetSavedRecipes)
	router.POST("/api/saved-recipes", write(h.SaveRecipe))
	router.DELETE("/api/saved-recipes", write(h.UnsaveRecipe))
}

func AddSearchRoutes(router *httprouter.Router, h *search.Handler) {
	router.GET("/api/search", h.SearchRecipes)
}

func AddSuggestionsRoutes(router *httprouter.Router, h *suggestions.Handler) {
	router.GET("/api/suggestions", h.GetSuggestions)
}
