package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/campuspulse/survey-gateway/internal/models"
)

// Normalize flattens each raw record's values object and resolves the two
// canonical fields on top of it. CourseCode comes from the configured
// course-code field, falling back to the literal CourseCode then courseCode;
// teacherId from the configured teacher-id field, then teacherId, then
// TeacherId. Every other field is preserved unchanged. A canonical field
// with no usable source value is omitted rather than set empty.
func Normalize(raw []models.RawResponse, courseCodeField, teacherIDField string) []models.Response {
	out := make([]models.Response, 0, len(raw))
	for _, r := range raw {
		resp := make(models.Response, len(r.Values)+2)
		for k, v := range r.Values {
			resp[k] = v
		}
		setCanonical(resp, "CourseCode", coalesce(r.Values, courseCodeField, "CourseCode", "courseCode"))
		setCanonical(resp, "teacherId", coalesce(r.Values, teacherIDField, "teacherId", "TeacherId"))
		out = append(out, resp)
	}
	return out
}

func setCanonical(resp models.Response, key, value string) {
	if value == "" {
		delete(resp, key)
		return
	}
	resp[key] = value
}

// coalesce returns the first listed field whose value has a non-empty
// trimmed string form. Empty field names (no configured override) are
// skipped.
func coalesce(values map[string]any, fields ...string) string {
	for _, field := range fields {
		if field == "" {
			continue
		}
		v, ok := values[field]
		if !ok || v == nil {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case float64:
			s = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			s = fmt.Sprint(t)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
