package categories

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

// GET /api/categories
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to read categories")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// POST /api/categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body models.CategoryInput
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	category, err := h.svc.Create(r.Context(), body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to create category")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, category)
}

// PUT /api/categories/:id
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ParseIntParam(ps, "id")
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to update category")
		return
	}
	var body models.CategoryInput
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	category, err := h.svc.Update(r.Context(), id, body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to update category")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, category)
}

// DELETE /api/categories/:id
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ParseIntParam(ps, "id")
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to delete category")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to delete category")
		return
	}
	utils.RespondWithMessage(w, "Category deleted")
}
