package handlers

import (
	"encoding/json"
	"net/http"

	"canteen-system/internal/common/logger"
	"canteen-system/internal/domain"
	"canteen-system/internal/service"
)

type UserHandler struct {
	service service.UserServiceInterface
	lg      *logger.Logger
}

func NewUserHandler(s service.UserServiceInterface, lg *logger.Logger) *UserHandler {
	return &UserHandler{service: s, lg: lg}
}

func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if _, err := uh.service.Register(req); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.SuccessResponse{Success: true})
}

func (uh *UserHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	users := uh.service.GetPendingAdmins()
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (uh *UserHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_id", "user id must be an integer")
		return
	}
	var req domain.ApproveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if _, err := uh.service.Approve(id, req.Status); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.SuccessResponse{Success: true})
}
