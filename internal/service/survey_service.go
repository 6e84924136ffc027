package service

import (
	"errors"

	"github.com/campuspulse/survey-gateway/internal/models"
	"github.com/campuspulse/survey-gateway/internal/refdata"
)

// Recognized survey keys and the query parameter they arrive under.
const (
	SurveyCourseDesign = "courseDesign"
	SurveyLearningExp  = "learningExp"
)

// ErrInvalidSurveyKey means the survey key is absent, unrecognized, or its
// survey id is not configured.
var ErrInvalidSurveyKey = errors.New("invalid survey key")

// Exporter yields the raw response records for one survey. Implemented by
// the qualtrics client.
type Exporter interface {
	Responses(surveyID string) ([]models.RawResponse, error)
}

type SurveyService struct {
	exporter  Exporter
	store     *refdata.Store
	surveyIDs map[string]string

	courseCodeField string
	teacherIDField  string
}

func NewSurveyService(exporter Exporter, store *refdata.Store, courseDesignID, learningExpID, courseCodeField, teacherIDField string) *SurveyService {
	return &SurveyService{
		exporter: exporter,
		store:    store,
		surveyIDs: map[string]string{
			SurveyCourseDesign: courseDesignID,
			SurveyLearningExp:  learningExpID,
		},
		courseCodeField: courseCodeField,
		teacherIDField:  teacherIDField,
	}
}

// Responses runs the full survey-data flow for a resolved caller: export the
// survey, normalize the records, then restrict them to the caller's scope.
// targetTeacherID is the admin-only impersonation parameter.
func (s *SurveyService) Responses(id models.Identity, surveyKey, targetTeacherID string) ([]models.Response, error) {
	surveyID := s.surveyIDs[surveyKey]
	if surveyID == "" {
		return nil, ErrInvalidSurveyKey
	}

	raw, err := s.exporter.Responses(surveyID)
	if err != nil {
		return nil, err
	}
	normalized := Normalize(raw, s.courseCodeField, s.teacherIDField)

	return ScopeFor(id, targetTeacherID).Apply(s.store, normalized)
}
