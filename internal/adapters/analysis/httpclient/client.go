package httpclient

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

	"github.com/bnema/cognisupport/internal/domain"
	"github.com/bnema/cognisupport/internal/ports"
	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultPath    = "/api/v1/tickets/analyze"

	requestIDHeader          = "X-Request-ID"
	maxAnalysisResponseBytes = 1 << 20
)

type Client struct {
	BaseURL    string
	Path       string
	HTTPClient *http.Client
	// RequestTimeout bounds a single call when the caller set no deadline.
	// Zero means calls may wait indefinitely.
	RequestTimeout time.Duration
	NewRequestID   func() string
}

var _ ports.Analyzer = Client{}

type analyzeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type analyzeResponse struct {
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Confidence string `json:"confidence"`
}

type apiErrorResponse struct {
	Detail string `json:"detail"`
}

func (c Client) Analyze(ctx context.Context, request domain.InsightRequest) (domain.Insight, error) {
	endpoint, err := buildAPIURL(c.BaseURL, c.path())
	if err != nil {
		return domain.Insight{}, err
	}

	body, err := json.Marshal(analyzeRequest{Title: request.Title, Description: request.Description})
	if err != nil {
		return domain.Insight{}, fmt.Errorf("encode analyze request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Insight{}, fmt.Errorf("create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, c.requestID())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.Insight{}, fmt.Errorf("request analysis: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.Insight{}, fmt.Errorf("request analysis: %w: %s", domain.ErrAnalysisStatus, decodeAPIError(resp))
	}

	var payload analyzeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAnalysisResponseBytes)).Decode(&payload); err != nil {
		return domain.Insight{}, fmt.Errorf("decode analyze response: %w: %w", domain.ErrMalformedInsight, err)
	}

	priority, err := domain.ParsePriority(payload.Priority)
	if err != nil {
		return domain.Insight{}, fmt.Errorf("decode analyze response: %w: %w", domain.ErrMalformedInsight, err)
	}

	insight := domain.Insight{
		Category:   strings.TrimSpace(payload.Category),
		Priority:   priority,
		Confidence: strings.TrimSpace(payload.Confidence),
	}
	if err := insight.Validate(); err != nil {
		return domain.Insight{}, fmt.Errorf("decode analyze response: %w", err)
	}

	return insight, nil
}

func (c Client) path() string {
	if c.Path == "" {
		return DefaultPath
	}
	return c.Path
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestID() string {
	if c.NewRequestID != nil {
		return c.NewRequestID()
	}
	return uuid.NewString()
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline || c.RequestTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.RequestTimeout)
}

func decodeAPIError(resp *http.Response) string {
	var apiErr apiErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAnalysisResponseBytes)).Decode(&apiErr); err != nil || apiErr.Detail == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", resp.StatusCode, apiErr.Detail)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("analysis base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse analysis base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("analysis base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("analysis base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse analysis path: %w", err)
	}
	return endpoint.String(), nil
}
