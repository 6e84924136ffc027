package refdata

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FetchError is returned when a reference document cannot be retrieved or
// parsed. Path names the offending document.
type FetchError struct {
	Path   string
	Reason string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("refdata: unable to load %s: %s", e.Path, e.Reason)
}

// HTTPFetcher retrieves reference documents from the static asset host.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (f *HTTPFetcher) Fetch(path string) ([]byte, error) {
	url := f.baseURL + "/" + strings.TrimLeft(path, "/")
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, &FetchError{Path: path, Reason: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Path: path, Reason: resp.Status}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Path: path, Reason: err.Error()}
	}
	return body, nil
}
