package comments

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

// GET /api/comments/:recipeId
func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	comments, err := h.svc.ListByRecipe(r.Context(), models.RecipeRef(ps.ByName("recipeId")))
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to read comments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, comments)
}

// POST /api/comments
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body models.CreateComment
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	comment, err := h.svc.Create(r.Context(), body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to create comment")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, comment)
}

// DELETE /api/comments/:id
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.svc.Delete(r.Context(), ps.ByName("id")); err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to delete comment")
		return
	}
	utils.RespondWithMessage(w, "Comment deleted")
}
