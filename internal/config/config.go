package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string
	GelfAddr string

	// Static asset host serving the reference documents.
	AssetsBaseURL   string
	LecturerMapPath string
	EnrollmentParts int

	// Qualtrics response-export API.
	QualtricsBaseURL     string
	QualtricsAPIToken    string
	CourseDesignSurveyID string
	LearningExpSurveyID  string
	CourseCodeField      string
	TeacherIDField       string

	AdminEmails []string

	// When set, the Access JWT assertion is validated instead of trusting
	// the plain email header.
	AccessJWTSecret string
}

func Load() *Config {
	return &Config{
		HTTPAddr:        getEnv("GW_ADDR", ":8080"),
		GelfAddr:        getEnv("GW_GELF_ADDR", ""),
		AssetsBaseURL:   getEnv("GW_ASSETS_BASE_URL", ""),
		LecturerMapPath: getEnv("GW_LECTURER_MAP_PATH", "data/lecturer-map.json"),
		EnrollmentParts: getEnvInt("GW_ENROLLMENT_PARTS", 5),

		QualtricsBaseURL:     getEnv("QUALTRICS_BASE_URL", ""),
		QualtricsAPIToken:    getEnv("QUALTRICS_API_TOKEN", ""),
		CourseDesignSurveyID: getEnv("QUALTRICS_COURSE_DESIGN_SURVEY_ID", ""),
		LearningExpSurveyID:  getEnv("QUALTRICS_LEARNING_EXP_SURVEY_ID", ""),
		CourseCodeField:      getEnv("QUALTRICS_COURSE_CODE_FIELD", ""),
		TeacherIDField:       getEnv("QUALTRICS_TEACHER_ID_FIELD", ""),

		AdminEmails: splitList(getEnv("ADMIN_EMAILS", "")),

		AccessJWTSecret: getEnv("GW_ACCESS_JWT_SECRET", ""),
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}
