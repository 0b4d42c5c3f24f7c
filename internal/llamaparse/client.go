// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llamaparse implements a client for the LlamaParse hosted
// document-parsing API. Parsing is job-based: the client uploads a file,
// polls the job until it settles, then fetches the result in the requested
// format. From the caller's side the whole exchange is one blocking call.
package llamaparse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf2x/internal/httputil"
	"github.com/pdiddy/pdf2x/pkg/types"
)

// DefaultBaseURL is the production LlamaParse endpoint.
const DefaultBaseURL = "https://api.cloud.llamaindex.ai"

const (
	defaultTimeout      = 60 * time.Second
	defaultPollInterval = 2 * time.Second
)

// Job statuses reported by the parsing API.
const (
	statusSuccess   = "SUCCESS"
	statusError     = "ERROR"
	statusCancelled = "CANCELED"
)

// Client talks to the LlamaParse API. Construct it with New.
type Client struct {
	baseURL        string
	apiKey         string
	userAgent      string
	premiumMode    bool
	continuousMode bool
	pollInterval   time.Duration
	maxRetries     int
	httpClient     *http.Client
	log            *logrus.Logger
}

// Option overrides a Client field after configuration is applied.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client. Tests use this
// together with httptest servers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithPollInterval overrides the delay between job status checks.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = d
	}
}

// New builds a client from cfg. Zero values for BaseURL, Timeout, and
// PollInterval fall back to package defaults.
func New(cfg types.ParserConfig, log *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		userAgent:      cfg.UserAgent,
		premiumMode:    cfg.PremiumMode,
		continuousMode: cfg.ContinuousMode,
		pollInterval:   cfg.PollInterval,
		maxRetries:     cfg.MaxRetries,
		log:            log,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.pollInterval <= 0 {
		c.pollInterval = defaultPollInterval
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c.httpClient = &http.Client{Timeout: timeout}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the parsing service.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("LlamaParse API returned HTTP %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("LlamaParse API returned HTTP %d", e.StatusCode)
}

// job is the upload and status-check response shape.
type job struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Parse uploads the PDF, waits for the parsing job to finish, and fetches
// the extracted content in the requested format. A successful job whose
// result carries no text yields an empty slice. There is no overall
// deadline; cancellation comes from ctx.
func (c *Client) Parse(ctx context.Context, pdfPath string, format types.Format) ([]types.Document, error) {
	j, err := c.upload(ctx, pdfPath)
	if err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{"job": j.ID, "status": j.Status}).Debug("parsing job submitted")

	if err := c.waitForJob(ctx, j.ID); err != nil {
		return nil, err
	}

	text, err := c.fetchResult(ctx, j.ID, format)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return []types.Document{{Text: text}}, nil
}

// upload POSTs the file to the parsing endpoint and returns the created job.
func (c *Client) upload(ctx context.Context, pdfPath string) (*job, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filepath.Base(pdfPath))
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", pdfPath, err)
	}
	if err := w.WriteField("premium_mode", strconv.FormatBool(c.premiumMode)); err != nil {
		return nil, fmt.Errorf("writing form field: %w", err)
	}
	if err := w.WriteField("continuous_mode", strconv.FormatBool(c.continuousMode)); err != nil {
		return nil, fmt.Errorf("writing form field: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	// A bytes.Reader body gives the request a GetBody, so a rate-limited
	// upload can be replayed by the retry helper.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/parsing/upload", bytes.NewReader(body.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("creating upload request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries, c.log)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", pdfPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp)
	}

	var j job
	if err := json.NewDecoder(resp.Body).Decode(&j); err != nil {
		return nil, fmt.Errorf("parsing upload response: %w", err)
	}
	if j.ID == "" {
		return nil, fmt.Errorf("upload response carried no job id")
	}
	return &j, nil
}

// waitForJob polls the job status until it settles. Rate-limited status
// checks are retried inside doGet; between checks the wait is pollInterval
// or context cancellation, whichever comes first.
func (c *Client) waitForJob(ctx context.Context, jobID string) error {
	for {
		j, err := c.jobStatus(ctx, jobID)
		if err != nil {
			return err
		}

		switch j.Status {
		case statusSuccess:
			return nil
		case statusError, statusCancelled:
			if j.ErrorMessage != "" {
				return fmt.Errorf("parsing job %s failed: %s", jobID, j.ErrorMessage)
			}
			return fmt.Errorf("parsing job %s ended with status %s", jobID, j.Status)
		}

		c.log.WithFields(logrus.Fields{"job": jobID, "status": j.Status}).Debug("parsing job pending")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

// jobStatus fetches the current state of a parsing job.
func (c *Client) jobStatus(ctx context.Context, jobID string) (*job, error) {
	resp, err := c.doGet(ctx, "/api/v1/parsing/job/"+jobID)
	if err != nil {
		return nil, fmt.Errorf("checking job %s: %w", jobID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp)
	}

	var j job
	if err := json.NewDecoder(resp.Body).Decode(&j); err != nil {
		return nil, fmt.Errorf("parsing job status: %w", err)
	}
	return &j, nil
}

// fetchResult retrieves the finished job's output. The markdown and text
// results arrive wrapped in a JSON field; the json result's raw body is
// returned as-is, whatever its shape.
func (c *Client) fetchResult(ctx context.Context, jobID string, format types.Format) (string, error) {
	resp, err := c.doGet(ctx, "/api/v1/parsing/job/"+jobID+"/result/"+string(format))
	if err != nil {
		return "", fmt.Errorf("fetching result for job %s: %w", jobID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readAPIError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading result for job %s: %w", jobID, err)
	}

	if format == types.FormatJSON {
		return string(raw), nil
	}

	var result struct {
		Markdown string `json:"markdown"`
		Text     string `json:"text"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("parsing result for job %s: %w", jobID, err)
	}
	if format == types.FormatMarkdown {
		return result.Markdown, nil
	}
	return result.Text, nil
}

// doGet issues an authenticated GET with 429 retry.
func (c *Client) doGet(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)
	return httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries, c.log)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}

// readAPIError turns a non-2xx response into an *APIError, pulling the
// detail field out of JSON error bodies when present.
func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var payload struct {
		Detail string `json:"detail"`
	}
	detail := string(body)
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}

	return &APIError{StatusCode: resp.StatusCode, Detail: detail}
}
