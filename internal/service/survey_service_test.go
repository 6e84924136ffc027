package service

import (
	"errors"
	"testing"

	"github.com/campuspulse/survey-gateway/internal/models"
)

// fakeExporter returns canned raw responses and records the survey id used.
type fakeExporter struct {
	surveyID string
	raw      []models.RawResponse
	err      error
}

func (f *fakeExporter) Responses(surveyID string) ([]models.RawResponse, error) {
	f.surveyID = surveyID
	return f.raw, f.err
}

func TestSurveyResponsesInvalidKey(t *testing.T) {
	exporter := &fakeExporter{}
	svc := NewSurveyService(exporter, testStore(t), "SV_CD", "", "", "")

	tests := []struct {
		name string
		key  string
	}{
		{"unrecognized", "bogus"},
		{"absent", ""},
		{"known key with unset id", SurveyLearningExp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Responses(models.Identity{IsAdmin: true}, tt.key, "")
			if !errors.Is(err, ErrInvalidSurveyKey) {
				t.Fatalf("error = %v, want ErrInvalidSurveyKey", err)
			}
			if exporter.surveyID != "" {
				t.Error("no export should run for an invalid survey key")
			}
		})
	}
}

func TestSurveyResponsesLecturerFlow(t *testing.T) {
	exporter := &fakeExporter{raw: []models.RawResponse{
		{Values: map[string]any{"CourseCode": "CS101", "QID1": "a"}},
		{Values: map[string]any{"CourseCode": "MATH200", "QID1": "b"}},
	}}
	svc := NewSurveyService(exporter, testStore(t), "SV_CD", "SV_LX", "", "")

	id := models.Identity{Email: "ada@uni.edu", TeacherID: "T1"}
	got, err := svc.Responses(id, SurveyCourseDesign, "")
	if err != nil {
		t.Fatalf("Responses() error = %v", err)
	}
	if exporter.surveyID != "SV_CD" {
		t.Errorf("exported survey %q, want SV_CD", exporter.surveyID)
	}
	if len(got) != 1 || got[0].CourseCode() != "CS101" {
		t.Errorf("lecturer T1 got %v, want only CS101", got)
	}
}

func TestSurveyResponsesAdminOverride(t *testing.T) {
	exporter := &fakeExporter{raw: []models.RawResponse{
		{Values: map[string]any{"CourseCode": "CS101"}},
		{Values: map[string]any{"CourseCode": "MATH200"}},
	}}
	svc := NewSurveyService(exporter, testStore(t), "SV_CD", "SV_LX", "", "")
	admin := models.Identity{Email: "admin@uni.edu", TeacherID: "T9", IsAdmin: true}

	// No target: everything, regardless of the admin's own courses.
	got, err := svc.Responses(admin, SurveyLearningExp, "")
	if err != nil {
		t.Fatalf("Responses() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("admin without target got %d responses, want 2", len(got))
	}
	if exporter.surveyID != "SV_LX" {
		t.Errorf("exported survey %q, want SV_LX", exporter.surveyID)
	}

	// Target T2: filtered by the target's courses.
	got, err = svc.Responses(admin, SurveyLearningExp, "T2")
	if err != nil {
		t.Fatalf("Responses() error = %v", err)
	}
	if len(got) != 1 || got[0].CourseCode() != "MATH200" {
		t.Errorf("admin targeting T2 got %v, want only MATH200", got)
	}
}

func TestSurveyResponsesExportError(t *testing.T) {
	wantErr := errors.New("qualtrics: export failed")
	exporter := &fakeExporter{err: wantErr}
	svc := NewSurveyService(exporter, testStore(t), "SV_CD", "SV_LX", "", "")

	_, err := svc.Responses(models.Identity{IsAdmin: true}, SurveyCourseDesign, "")
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want the export error passed through", err)
	}
}
