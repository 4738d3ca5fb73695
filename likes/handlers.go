package likes

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

// GET /api/likes/:recipeId
func (h *Handler) GetLikes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	likes, err := h.svc.ListByRecipe(r.Context(), models.RecipeRef(ps.ByName("recipeId")))
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to read likes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, likes)
}

// POST /api/likes
func (h *Handler) CreateLike(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body models.CreateLike
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	like, err := h.svc.Create(r.Context(), body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to create like")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, like)
}

// DELETE /api/likes/:recipeId/:userId
func (h *Handler) DeleteLike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.svc.Delete(r.Context(), models.RecipeRef(ps.ByName("recipeId")), ps.ByName("userId"))
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to remove like")
		return
	}
	utils.RespondWithMessage(w, "Like removed")
}
