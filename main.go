package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/campuspulse/survey-gateway/internal/config"
	"github.com/campuspulse/survey-gateway/internal/gelf"
	"github.com/campuspulse/survey-gateway/internal/handler"
	"github.com/campuspulse/survey-gateway/internal/qualtrics"
	"github.com/campuspulse/survey-gateway/internal/refdata"
	"github.com/campuspulse/survey-gateway/internal/router"
	"github.com/campuspulse/survey-gateway/internal/service"
)

func main() {
	// .env is optional; real deployments get everything from the platform.
	godotenv.Load()

	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	if cfg.AssetsBaseURL == "" {
		log.Fatalf("GW_ASSETS_BASE_URL is required")
	}
	if cfg.QualtricsBaseURL == "" || cfg.QualtricsAPIToken == "" {
		log.Fatalf("Qualtrics configuration missing (QUALTRICS_BASE_URL, QUALTRICS_API_TOKEN)")
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	// Reference data
	fetcher := refdata.NewHTTPFetcher(cfg.AssetsBaseURL, httpClient)
	store := refdata.NewStore(fetcher, cfg.LecturerMapPath, refdata.PartPaths(cfg.EnrollmentParts))

	// Qualtrics export client
	exporter := qualtrics.New(cfg.QualtricsBaseURL, cfg.QualtricsAPIToken,
		qualtrics.WithHTTPClient(httpClient))

	// Services
	sessionSvc := service.NewSessionService(store, cfg.AdminEmails)
	surveySvc := service.NewSurveyService(exporter, store,
		cfg.CourseDesignSurveyID, cfg.LearningExpSurveyID,
		cfg.CourseCodeField, cfg.TeacherIDField)

	// Handlers
	sessionH := handler.NewSessionHandler(sessionSvc)
	surveyH := handler.NewSurveyHandler(sessionSvc, surveySvc)

	// Router
	r := router.New(cfg.AccessJWTSecret, sessionH, surveyH)

	log.Printf("survey-gateway starting on %s (%d enrollment partitions)", cfg.HTTPAddr, cfg.EnrollmentParts)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
