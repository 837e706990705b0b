// File: services/schedule/gateway.go
package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campushub/config"
	"campushub/models"
)

// Session carries the caller's credential. It is handed to the editor and
// viewer explicitly by the owning shell; nothing in this package reads
// ambient global state.
type Session struct {
	Token string
}

// Valid reports whether a credential is present.
func (s Session) Valid() bool {
	return s.Token != ""
}

// Gateway is the boundary to the remote timetable store.
// FetchMyTimetable returns (nil, nil) when the store has no timetable for
// the caller; that is the viewer's Empty state, not an error.
type Gateway interface {
	FetchMyTimetable(ctx context.Context, session Session) (*models.Timetable, error)
	SubmitTimetable(ctx context.Context, session Session, submission models.TimetableSubmission) error
}

// GatewayError is a structured failure from the remote store. Detail is the
// server's "detail" text when one was provided.
type GatewayError struct {
	StatusCode int
	Detail     string
}

func (e *GatewayError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("timetable store returned status %d", e.StatusCode)
}

// HTTPGateway talks to the timetable store over its REST API.
type HTTPGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPGateway builds a gateway for the store at baseURL.
func NewHTTPGateway(baseURL string, httpClient *http.Client) *HTTPGateway {
	return &HTTPGateway{baseURL: baseURL, httpClient: httpClient}
}

// DefaultGatewayHTTPClient returns the client used when the caller has no
// special transport requirements.
func DefaultGatewayHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// NewConfiguredGateway builds a gateway against the store named in
// TIMETABLE_API_URL, falling back to the local server.
func NewConfiguredGateway() *HTTPGateway {
	baseURL := config.AppConfig.TimetableAPIURL
	if baseURL == "" {
		baseURL = "http://localhost:" + config.AppConfig.AppPort
	}
	return NewHTTPGateway(baseURL, DefaultGatewayHTTPClient())
}

func (g *HTTPGateway) FetchMyTimetable(ctx context.Context, session Session) (*models.Timetable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/api/timetables/my-timetable", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+session.Token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var timetable models.Timetable
		if err := json.NewDecoder(resp.Body).Decode(&timetable); err != nil {
			// A body we cannot parse is a transport failure, not a crash.
			return nil, &GatewayError{StatusCode: resp.StatusCode, Detail: "unexpected response from timetable store"}
		}
		return &timetable, nil
	case resp.StatusCode == http.StatusNotFound:
		// The timetable simply hasn't been uploaded yet.
		return nil, nil
	default:
		return nil, &GatewayError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
}

func (g *HTTPGateway) SubmitTimetable(ctx context.Context, session Session, submission models.TimetableSubmission) error {
	body, err := json.Marshal(submission)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/timetables/class/manual", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+session.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &GatewayError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
}

// readDetail pulls the "detail" text out of an error body, tolerating
// bodies that are not the expected shape.
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}
