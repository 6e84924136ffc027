package service

import (
	"testing"

	"github.com/campuspulse/survey-gateway/internal/models"
)

func raw(values map[string]any) models.RawResponse {
	return models.RawResponse{Values: values}
}

func TestNormalizeCanonicalFields(t *testing.T) {
	tests := []struct {
		name            string
		values          map[string]any
		courseCodeField string
		teacherIDField  string
		wantCourse      string
		wantTeacher     string
	}{
		{
			name:        "literal fields",
			values:      map[string]any{"CourseCode": "CS101", "teacherId": "T1"},
			wantCourse:  "CS101",
			wantTeacher: "T1",
		},
		{
			name:        "lower and upper variants",
			values:      map[string]any{"courseCode": "CS102", "TeacherId": "T2"},
			wantCourse:  "CS102",
			wantTeacher: "T2",
		},
		{
			name:            "configured override wins",
			values:          map[string]any{"QID7_TEXT": "CS103", "CourseCode": "WRONG", "QID9": "T3", "teacherId": "ALSO_WRONG"},
			courseCodeField: "QID7_TEXT",
			teacherIDField:  "QID9",
			wantCourse:      "CS103",
			wantTeacher:     "T3",
		},
		{
			name:            "empty override value falls through",
			values:          map[string]any{"QID7_TEXT": "  ", "CourseCode": "CS104", "teacherId": "T4"},
			courseCodeField: "QID7_TEXT",
			wantCourse:      "CS104",
			wantTeacher:     "T4",
		},
		{
			name:        "numeric teacher id stringified",
			values:      map[string]any{"CourseCode": "CS105", "teacherId": float64(42)},
			wantCourse:  "CS105",
			wantTeacher: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]models.RawResponse{raw(tt.values)}, tt.courseCodeField, tt.teacherIDField)
			if len(got) != 1 {
				t.Fatalf("got %d responses, want 1", len(got))
			}
			if got[0]["CourseCode"] != tt.wantCourse {
				t.Errorf("CourseCode = %v, want %q", got[0]["CourseCode"], tt.wantCourse)
			}
			if got[0]["teacherId"] != tt.wantTeacher {
				t.Errorf("teacherId = %v, want %q", got[0]["teacherId"], tt.wantTeacher)
			}
		})
	}
}

func TestNormalizePreservesOtherFields(t *testing.T) {
	got := Normalize([]models.RawResponse{raw(map[string]any{
		"CourseCode": "CS101",
		"teacherId":  "T1",
		"QID1":       float64(5),
		"comment":    "great course",
	})}, "", "")

	if got[0]["QID1"] != float64(5) || got[0]["comment"] != "great course" {
		t.Errorf("original fields not preserved: %v", got[0])
	}
	if len(got[0]) != 4 {
		t.Errorf("normalized record has %d fields, want 4: %v", len(got[0]), got[0])
	}
}

func TestNormalizeOmitsUnresolvableCanonicals(t *testing.T) {
	got := Normalize([]models.RawResponse{raw(map[string]any{
		"QID1":       "x",
		"CourseCode": "",
	})}, "", "")

	if _, ok := got[0]["CourseCode"]; ok {
		t.Errorf("CourseCode with no usable source should be omitted: %v", got[0])
	}
	if _, ok := got[0]["teacherId"]; ok {
		t.Errorf("teacherId with no usable source should be omitted: %v", got[0])
	}
}

func TestNormalizeNilValues(t *testing.T) {
	got := Normalize([]models.RawResponse{{}}, "", "")
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("record without values should normalize to empty: %v", got)
	}
}
