// Package backendapi is the HTTP adapter for the interview backend: session
// bootstrap, integrity event reporting and the two-step evidence upload.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/hirelens/interview-cli/internal/domain"
)

const maxResponseBytes = 1 << 20

const (
	bootstrapPath = "/api/v1/sessions/bootstrap"
	integrityPath = "/api/v1/integrity/events"
	evidencePath  = "/api/v1/integrity/evidence"
)

// Client talks to the interview backend over HTTPS.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

type bootstrapRequest struct {
	InterviewID    string `json:"interview_id"`
	CandidateEmail string `json:"candidate_email"`
	AccessCode     string `json:"access_code"`
}

type bootstrapResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ServerURL string `json:"server_url"`
	Room      string `json:"room"`
	Identity  string `json:"identity"`
	Interview struct {
		InterviewID   string `json:"interview_id"`
		CandidateName string `json:"candidate_name"`
		RoundName     string `json:"round_name"`
		RoundDuration string `json:"round_duration"`
		RequireScreen bool   `json:"require_screen"`
	} `json:"interview"`
}

type integrityEventRequest struct {
	InterviewID string `json:"interview_id"`
	EventType   string `json:"event_type"`
	Timestamp   int64  `json:"timestamp"`
	EvidenceRef string `json:"evidence_ref,omitempty"`
}

type evidenceSlotRequest struct {
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
}

type evidenceSlotResponse struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
	Key    string            `json:"key"`
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// BootstrapSession exchanges candidate identity and an interview id for the
// media session credential and round metadata.
func (c Client) BootstrapSession(ctx context.Context, interviewID, candidateEmail, accessCode string) (domain.SessionBootstrap, error) {
	if interviewID == "" {
		return domain.SessionBootstrap{}, errors.New("interview id is required")
	}

	var payload bootstrapResponse
	if err := c.postJSON(ctx, bootstrapPath, bootstrapRequest{
		InterviewID:    interviewID,
		CandidateEmail: candidateEmail,
		AccessCode:     accessCode,
	}, &payload); err != nil {
		return domain.SessionBootstrap{}, fmt.Errorf("bootstrap session: %w", err)
	}

	if !payload.Success {
		return domain.SessionBootstrap{}, errors.New("bootstrap session: backend declined the session")
	}
	if payload.Token == "" || payload.ServerURL == "" {
		return domain.SessionBootstrap{}, errors.New("bootstrap session: response missing credential")
	}

	return domain.SessionBootstrap{
		Success:    true,
		Credential: domain.Credential{Token: payload.Token, ServerURL: payload.ServerURL},
		Room:       payload.Room,
		Identity:   payload.Identity,
		Interview: domain.InterviewMetadata{
			InterviewID:   payload.Interview.InterviewID,
			CandidateName: payload.Interview.CandidateName,
			RoundName:     payload.Interview.RoundName,
			RoundDuration: payload.Interview.RoundDuration,
			RequireScreen: payload.Interview.RequireScreen,
		},
	}, nil
}

// SubmitIntegrityEvent records one violation or periodic checkpoint.
func (c Client) SubmitIntegrityEvent(ctx context.Context, event domain.IntegrityEvent) error {
	if err := c.postJSON(ctx, integrityPath, integrityEventRequest{
		InterviewID: event.InterviewID,
		EventType:   event.EventType,
		Timestamp:   event.Timestamp,
		EvidenceRef: event.EvidenceRef,
	}, nil); err != nil {
		return fmt.Errorf("submit integrity event: %w", err)
	}
	return nil
}

// RequestEvidenceSlot asks the backend for an upload destination for one
// evidence object.
func (c Client) RequestEvidenceSlot(ctx context.Context, name string, size int64) (domain.EvidenceSlot, error) {
	var payload evidenceSlotResponse
	if err := c.postJSON(ctx, evidencePath, evidenceSlotRequest{FileName: name, FileSize: size}, &payload); err != nil {
		return domain.EvidenceSlot{}, fmt.Errorf("request evidence slot: %w", err)
	}

	if payload.URL == "" || payload.Key == "" {
		return domain.EvidenceSlot{}, errors.New("request evidence slot: response missing upload destination")
	}

	return domain.EvidenceSlot{URL: payload.URL, Fields: payload.Fields, Key: payload.Key}, nil
}

// UploadEvidence performs the direct multipart upload to the slot: the slot's
// fields first, then the file part.
func (c Client) UploadEvidence(ctx context.Context, slot domain.EvidenceSlot, name string, data []byte) error {
	if slot.URL == "" {
		return errors.New("upload evidence: slot url is required")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for field, value := range slot.Fields {
		if err := writer.WriteField(field, value); err != nil {
			return fmt.Errorf("upload evidence: write field %q: %w", field, err)
		}
	}
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return fmt.Errorf("upload evidence: create file part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("upload evidence: write file part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("upload evidence: finalize body: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, slot.URL, &body)
	if err != nil {
		return fmt.Errorf("upload evidence: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("upload evidence: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("upload evidence: %s", decodeAPIError(resp))
	}
	return nil
}

func (c Client) postJSON(ctx context.Context, path string, request any, response any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.New(decodeAPIError(resp))
	}

	if response == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(response); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func decodeAPIError(resp *http.Response) string {
	var apiErr apiErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&apiErr); err != nil {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	if apiErr.Error == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	if apiErr.Message != "" {
		return apiErr.Error + ": " + apiErr.Message
	}
	return apiErr.Error
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
