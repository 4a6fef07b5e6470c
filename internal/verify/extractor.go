package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	extractorTimeout          = 30 * time.Second
	extractorMaxResponseBytes = 1 << 20
)

// TextExtractor is the opaque OCR/vision collaborator: it turns an uploaded
// image into text. Implementations own their transport and failure modes.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, r io.Reader) (string, error)
}

// HTTPExtractor forwards the image to an external extraction service as a
// multipart upload and expects a {"text": "..."} JSON reply.
type HTTPExtractor struct {
	apiURL string
	client *http.Client
}

// NewHTTPExtractor returns a client for apiURL, or nil when unconfigured.
func NewHTTPExtractor(apiURL string) *HTTPExtractor {
	if apiURL == "" {
		return nil
	}
	return &HTTPExtractor{
		apiURL: apiURL,
		client: &http.Client{Timeout: extractorTimeout},
	}
}

func (e *HTTPExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("extractor: build form: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", fmt.Errorf("extractor: copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("extractor: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.apiURL, &buf)
	if err != nil {
		return "", fmt.Errorf("extractor: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("extractor: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extractor: status %d", resp.StatusCode)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, extractorMaxResponseBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("extractor: decode response: %w", err)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", fmt.Errorf("extractor: no text detected in image")
	}
	return text, nil
}
