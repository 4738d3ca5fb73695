package users

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

// GET /api/users/:uid
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := h.svc.Get(r.Context(), ps.ByName("uid"))
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to read user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// POST /api/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body models.CreateUser
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	user, err := h.svc.Create(r.Context(), body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to create user")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, user)
}

// PUT /api/users/:uid
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body models.UpdateUser
	if !utils.DecodeJSON(w, r, &body) {
		return
	}
	user, err := h.svc.Update(r.Context(), ps.ByName("uid"), body)
	if err != nil {
		utils.RespondWithServiceError(w, r, err, "Failed to update user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
