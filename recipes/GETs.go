package recipes

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"cookbook/utils"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/recipes
func (h *Handler) GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	recipes, err := h.svc.List(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to read recipes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipes)
}

// GetRecipeOrUserRecipes serves GET /api/recipes/*path. httprouter cannot
// register /recipes/:id next to /recipes/user/:userId, so both are routed
// through one catch-all and split here.
func (h *Handler) GetRecipeOrUserRecipes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rest := strings.Trim(ps.ByName("path"), "/")
	if userID, ok := strings.CutPrefix(rest, "user/"); ok && userID != "" && !strings.Contains(userID, "/") {
		h.getUserRecipes(w, r, userID)
		return
	}
	if rest == "" || strings.Contains(rest, "/") {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	h.getRecipe(w, r, rest)
}

// GET /api/recipes/:id
func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}
	recipe, err := h.svc.Get(r.Context(), id, utils.GetUserIDFromRequest(r))
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to read recipe")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// GET /api/recipes/user/:userId
func (h *Handler) getUserRecipes(w http.ResponseWriter, r *http.Request, userID string) {
	recipes, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to read user recipes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipes)
}
