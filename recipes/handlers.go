package recipes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"cookbook/models"
	"cookbook/utils"
)

// POST /api/recipes
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body models.CreateRecipe
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	recipe, err := h.svc.Create(r.Context(), body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to create recipe")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, recipe)
}

// PUT /api/recipes/:id
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ParseIntParam(ps, "id")
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to update recipe")
		return
	}
	var body models.UpdateRecipe
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	recipe, err := h.svc.Update(r.Context(), id, body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to update recipe")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// DELETE /api/recipes/:id
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ParseIntParam(ps, "id")
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to delete recipe")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to delete recipe")
		return
	}
	utils.RespondWithMessage(w, "Recipe deleted")
}
