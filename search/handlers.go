package search

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"cookbook/utils"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/search?query=
func (h *Handler) SearchRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	results, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to search recipes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}
