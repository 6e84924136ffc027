// Package qualtrics drives the Qualtrics v3 response-export protocol:
// create an export job, poll it until it reaches a terminal status, then
// download the materialized file.
//
// An export runs through the states Created → Polling → {Complete, Failed,
// TimedOut}; a complete job is then Downloaded. No step is retried: the
// whole operation either yields the full response list or fails with one
// terminal error.
package qualtrics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/campuspulse/survey-gateway/internal/models"
)

// State is the position of an export job in the protocol.
type State int

const (
	StateCreated State = iota
	StatePolling
	StateComplete
	StateFailed
	StateTimedOut
	StateDownloaded
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePolling:
		return "polling"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed-out"
	case StateDownloaded:
		return "downloaded"
	}
	return "unknown"
}

// The polling budget is fixed by the platform's guidance: 30 checks, one
// second apart, then give up.
const (
	pollAttempts = 30
	pollInterval = time.Second
)

// Client talks to the Qualtrics API. Safe for concurrent use.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
	sleep    func(time.Duration)
}

// Option adjusts a Client; used by tests to inject a transport and a fake
// clock.
type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithSleep(fn func(time.Duration)) Option {
	return func(c *Client) { c.sleep = fn }
}

func New(baseURL, apiToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		http:     http.DefaultClient,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// job tracks one export through its states. Jobs are transient: one per
// Responses call, never persisted.
type job struct {
	surveyID   string
	progressID string
	fileID     string
	state      State
}

// Responses runs the full export protocol for surveyID and returns the raw
// response records from the downloaded file.
func (c *Client) Responses(surveyID string) ([]models.RawResponse, error) {
	j := &job{surveyID: surveyID, state: StateCreated}
	if err := c.create(j); err != nil {
		return nil, err
	}
	if err := c.poll(j); err != nil {
		return nil, err
	}
	return c.download(j)
}

func (c *Client) create(j *job) error {
	body, _ := json.Marshal(map[string]any{"format": "json", "compress": false})
	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("%s/surveys/%s/export-responses", c.baseURL, j.surveyID),
		bytes.NewReader(body))
	if err != nil {
		return &CreateError{Status: err.Error()}
	}
	req.Header.Set("X-API-TOKEN", c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	var result struct {
		Result struct {
			ProgressID string `json:"progressId"`
		} `json:"result"`
	}
	if status, err := c.do(req, &result); err != nil {
		return &CreateError{Status: status}
	}
	j.progressID = result.Result.ProgressID
	j.state = StatePolling
	return nil
}

func (c *Client) poll(j *job) error {
	for attempt := 0; attempt < pollAttempts; attempt++ {
		c.sleep(pollInterval)

		req, err := http.NewRequest(http.MethodGet,
			fmt.Sprintf("%s/surveys/%s/export-responses/%s", c.baseURL, j.surveyID, j.progressID), nil)
		if err != nil {
			return &PollError{Status: err.Error()}
		}
		req.Header.Set("X-API-TOKEN", c.apiToken)
		req.Header.Set("Content-Type", "application/json")

		var result struct {
			Result struct {
				Status string `json:"status"`
				FileID string `json:"fileId"`
			} `json:"result"`
		}
		if status, err := c.do(req, &result); err != nil {
			return &PollError{Status: status}
		}

		switch result.Result.Status {
		case "complete":
			j.fileID = result.Result.FileID
			j.state = StateComplete
			return nil
		case "failed":
			j.state = StateFailed
			return ErrExportFailed
		}
		// inProgress or anything else: keep polling
	}
	j.state = StateTimedOut
	return ErrExportTimeout
}

func (c *Client) download(j *job) ([]models.RawResponse, error) {
	req, err := http.NewRequest(http.MethodGet,
		fmt.Sprintf("%s/surveys/%s/export-responses/%s/file", c.baseURL, j.surveyID, j.fileID), nil)
	if err != nil {
		return nil, &DownloadError{Status: err.Error()}
	}
	req.Header.Set("X-API-TOKEN", c.apiToken)

	var result struct {
		Responses []models.RawResponse `json:"responses"`
	}
	if status, err := c.do(req, &result); err != nil {
		return nil, &DownloadError{Status: status}
	}
	j.state = StateDownloaded
	if result.Responses == nil {
		return []models.RawResponse{}, nil
	}
	return result.Responses, nil
}

// do executes the request and decodes a 2xx JSON body into out. On failure
// it returns the HTTP status line (or the transport error text) for the
// caller to wrap in its step error.
func (c *Client) do(req *http.Request, out any) (string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return err.Error(), err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return resp.Status, fmt.Errorf("qualtrics: unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err.Error(), err
	}
	return "", nil
}
