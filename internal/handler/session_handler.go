package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/campuspulse/survey-gateway/internal/auth"
	"github.com/campuspulse/survey-gateway/internal/service"
)

type SessionHandler struct {
	svc *service.SessionService
}

func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) Session(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.Resolve(auth.GetEmail(r.Context()))
	if err != nil {
		if errors.Is(err, service.ErrNoLecturerRecord) {
			writeError(w, http.StatusForbidden, "No lecturer record found for your account.")
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, id.ToResponse())
}

// internalError covers reference-data and export failures. These surface as
// opaque 500s rather than the structured error shape; details go to the log
// only.
func internalError(w http.ResponseWriter, err error) {
	log.Printf("Error: %v", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
