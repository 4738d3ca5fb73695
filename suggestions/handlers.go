package suggestions

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

// GET /api/suggestions?query=
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := h.svc.Suggest(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to get suggestions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
