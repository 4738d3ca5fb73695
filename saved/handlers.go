package saved

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"cookbook/models"
	"cookbook/utils"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/saved-recipes?userId=&recipeId=
func (h *Handler) GetSavedRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.Query(r, "userId")
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "userId is required")
		return
	}
	views, err := h.svc.List(r.Context(), userID, models.RecipeRef(utils.Query(r, "recipeId")))
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to read saved recipes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, views)
}

// POST /api/saved-recipes
func (h *Handler) SaveRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body models.CreateSavedRecipe
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	entry, err := h.svc.Create(r.Context(), body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to save recipe")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, entry)
}

// DELETE /api/saved-recipes?userId=&recipeId=
func (h *Handler) UnsaveRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.Query(r, "userId")
	recipeID := utils.Query(r, "recipeId")
	if userID == "" || recipeID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "userId and recipeId are required")
		return
	}
	if err := h.svc.Delete(r.Context(), userID, models.RecipeRef(recipeID)); err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to remove saved recipe")
		return
	}
	utils.RespondWithMessage(w, "Recipe removed from saved")
}
