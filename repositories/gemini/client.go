// Package gemini talks to the Generative Language API's generateContent
// endpoint and returns the first candidate's text.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Jeffail/gabs"
)

var (
	ErrMissingCredential = errors.New("tutor API key is not configured")
	ErrGenerationFailed  = errors.New("text generation failed")
)

const maxErrorBodyLength = 512

type (
	Client struct {
		apiKey     string
		model      string
		baseUrl    string
		timeout    time.Duration
		httpClient *http.Client
	}

	generateRequest struct {
		Contents []content `json:"contents"`
	}

	content struct {
		Parts []part `json:"parts"`
	}

	part struct {
		Text string `json:"text"`
	}
)

func NewClient(apiKey string, model string, baseUrl string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a single-turn prompt and returns the generated text.
// Failures are not retried. The configured timeout bounds the whole call and
// surfaces as context.DeadlineExceeded.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrMissingCredential
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %v", ErrGenerationFailed, err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseUrl, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: reading response: %v", ErrGenerationFailed, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		detail := string(body)
		if len(detail) > maxErrorBodyLength {
			detail = detail[:maxErrorBodyLength]
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrGenerationFailed, res.StatusCode, strings.TrimSpace(detail))
	}

	parsed, err := gabs.ParseJSON(body)
	if err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrGenerationFailed, err)
	}

	text := extractText(parsed)
	if text == "" {
		return "", fmt.Errorf("%w: response contained no text", ErrGenerationFailed)
	}

	return text, nil
}

func extractText(parsed *gabs.Container) string {
	candidates, err := parsed.S("candidates").Children()
	if err != nil || len(candidates) == 0 {
		return ""
	}

	parts, err := candidates[0].S("content", "parts").Children()
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for _, p := range parts {
		if text, ok := p.S("text").Data().(string); ok {
			sb.WriteString(text)
		}
	}
	return sb.String()
}
