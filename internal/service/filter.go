package service

import (
	"github.com/campuspulse/survey-gateway/internal/models"
	"github.com/campuspulse/survey-gateway/internal/refdata"
)

// Scope is the caller's authorization context for viewing survey responses,
// one variant per caller kind. Apply restricts a normalized response list to
// what the scope may see, preserving order; the enrollment index is loaded
// only when a scope actually filters.
type Scope interface {
	Apply(store *refdata.Store, responses []models.Response) ([]models.Response, error)
}

// TeacherScope restricts a lecturer to their own courses.
type TeacherScope struct {
	TeacherID string
}

func (s TeacherScope) Apply(store *refdata.Store, responses []models.Response) ([]models.Response, error) {
	idx, err := store.EnrollmentIndex()
	if err != nil {
		return nil, err
	}
	return filterByCourses(idx[s.TeacherID], responses), nil
}

// AdminScope sees everything, or impersonates a target teacher when
// TargetTeacherID is set.
type AdminScope struct {
	TargetTeacherID string
}

func (s AdminScope) Apply(store *refdata.Store, responses []models.Response) ([]models.Response, error) {
	if s.TargetTeacherID == "" {
		return responses, nil
	}
	idx, err := store.EnrollmentIndex()
	if err != nil {
		return nil, err
	}
	return filterByCourses(idx[s.TargetTeacherID], responses), nil
}

// ScopeFor picks the scope variant for a resolved identity. targetTeacherID
// is honored for admins only.
func ScopeFor(id models.Identity, targetTeacherID string) Scope {
	if id.IsAdmin {
		return AdminScope{TargetTeacherID: targetTeacherID}
	}
	return TeacherScope{TeacherID: id.TeacherID}
}

// filterByCourses keeps responses whose CourseCode is in courses. A nil set
// (teacher absent from the index) keeps nothing.
func filterByCourses(courses refdata.CourseSet, responses []models.Response) []models.Response {
	out := make([]models.Response, 0, len(responses))
	for _, r := range responses {
		code := r.CourseCode()
		if code == "" || !courses.Has(code) {
			continue
		}
		out = append(out, r)
	}
	return out
}
