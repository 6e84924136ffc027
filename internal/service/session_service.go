package service

import (
	"errors"
	"strings"

	"github.com/campuspulse/survey-gateway/internal/models"
	"github.com/campuspulse/survey-gateway/internal/refdata"
)

// ErrNoLecturerRecord means the caller is neither in the lecturer map nor on
// the admin list.
var ErrNoLecturerRecord = errors.New("no lecturer record found for your account")

type SessionService struct {
	store  *refdata.Store
	admins map[string]struct{}
}

func NewSessionService(store *refdata.Store, adminEmails []string) *SessionService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		admins[email] = struct{}{}
	}
	return &SessionService{store: store, admins: admins}
}

// Resolve maps a caller email (already normalized by the auth middleware)
// to its Identity.
func (s *SessionService) Resolve(email string) (models.Identity, error) {
	m, err := s.store.LecturerMap()
	if err != nil {
		return models.Identity{}, err
	}
	teacherID := m[email]
	_, isAdmin := s.admins[email]
	if teacherID == "" && !isAdmin {
		return models.Identity{}, ErrNoLecturerRecord
	}
	return models.Identity{Email: email, TeacherID: teacherID, IsAdmin: isAdmin}, nil
}
