// Package transcribe turns recorded WAV answers into plain text through a
// Whisper-compatible transcription endpoint.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/revlab/reviewer-survey-service/internal/domain"
)

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// Transcribe posts the audio to the transcription service and returns the
// recognized text. Service-side failures surface as TRANSCRIPTION_FAILED so
// pages can offer a retry instead of crashing.
func (c *Client) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if c.baseURL == "" {
		return "", domain.NewDomainError(domain.ErrorCodeStoreUnavailable, "transcription service not configured")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	if _, err := fw.Write(audio); err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/audio/transcriptions", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", domain.NewDomainError(domain.ErrorCodeTranscription, fmt.Sprintf("transcription request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", domain.NewDomainError(domain.ErrorCodeTranscription,
			fmt.Sprintf("transcription service returned %d: %s", resp.StatusCode, msg))
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", domain.NewDomainError(domain.ErrorCodeTranscription, "malformed transcription response")
	}

	return parsed.Text, nil
}
