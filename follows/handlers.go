package follows

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

// GET /api/follows/:userId
func (h *Handler) GetFollows(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	graph, err := h.svc.Graph(r.Context(), ps.ByName("userId"))
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to read follows")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, graph)
}

// POST /api/follows
func (h *Handler) CreateFollow(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body models.CreateFollow
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	follow, err := h.svc.Create(r.Context(), body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to create follow")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, follow)
}

// DELETE /api/follows/:followerId/:followingId
func (h *Handler) DeleteFollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.svc.Delete(r.Context(), ps.ByName("followerId"), ps.ByName("followingId")); err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to unfollow")
		return
	}
	utils.RespondWithMessage(w, "Unfollowed successfully")
}
