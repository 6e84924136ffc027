package qualtrics

import (
	"errors"
	"fmt"
)

// CreateError is returned when the export-creation request is rejected.
type CreateError struct {
	Status string
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("qualtrics: failed to create export: %s", e.Status)
}

// PollError is returned when a progress check is rejected, as opposed to the
// job itself reporting failure (ErrExportFailed).
type PollError struct {
	Status string
}

func (e *PollError) Error() string {
	return fmt.Sprintf("qualtrics: failed to check progress: %s", e.Status)
}

// DownloadError is returned when the export file cannot be fetched.
type DownloadError struct {
	Status string
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("qualtrics: failed to download export file: %s", e.Status)
}

var (
	// ErrExportFailed means the platform reported the export job as failed.
	ErrExportFailed = errors.New("qualtrics: export failed")

	// ErrExportTimeout means the job reached neither complete nor failed
	// within the polling budget.
	ErrExportTimeout = errors.New("qualtrics: export timed out")
)
