package docintel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/telemetry"
)

const (
	DefaultAPIVersion   = "2023-07-31"
	DefaultModelID      = "prebuilt-read"
	DefaultPollInterval = time.Second
	DefaultTimeout      = 5 * time.Minute

	maxErrorBodyBytes = 64 << 10
	maxPollRetries    = 3
)

// AzureOptions configures an AzureClient.
type AzureOptions struct {
	Endpoint     string
	Key          string
	APIVersion   string
	ModelID      string
	TokenSource  oauth2.TokenSource
	HTTPClient   *http.Client
	PollInterval time.Duration
	Timeout      time.Duration
}

// AzureClient extracts text with the Azure AI Document Intelligence
// analyze API: submit the document, then poll the returned operation until
// it reaches a terminal state.
type AzureClient struct {
	endpoint     string
	key          string
	apiVersion   string
	modelID      string
	httpClient   *http.Client
	pollInterval time.Duration
	timeout      time.Duration
}

// NewAzureClient validates opts and constructs a client. It returns
// ErrNotConfigured when the endpoint or credential is missing.
func NewAzureClient(opts AzureOptions) (*AzureClient, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(opts.Endpoint), "/")
	if endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required: %w", ErrNotConfigured)
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("azure endpoint %q: %w", endpoint, ErrNotConfigured)
	}
	key := strings.TrimSpace(opts.Key)
	if key == "" && opts.TokenSource == nil {
		return nil, fmt.Errorf("azure key is required: %w", ErrNotConfigured)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	if opts.TokenSource != nil {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		wrapped := *httpClient
		wrapped.Transport = &oauth2.Transport{Source: opts.TokenSource, Base: base}
		httpClient = &wrapped
		key = ""
	}

	c := &AzureClient{
		endpoint:     endpoint,
		key:          key,
		apiVersion:   opts.APIVersion,
		modelID:      opts.ModelID,
		httpClient:   httpClient,
		pollInterval: opts.PollInterval,
		timeout:      opts.Timeout,
	}
	if c.apiVersion == "" {
		c.apiVersion = DefaultAPIVersion
	}
	if c.modelID == "" {
		c.modelID = DefaultModelID
	}
	if c.pollInterval <= 0 {
		c.pollInterval = DefaultPollInterval
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	return c, nil
}

// Extract submits doc and waits for the analyze operation to finish.
func (c *AzureClient) Extract(ctx context.Context, doc Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	opURL, err := c.submit(ctx, doc)
	if err != nil {
		return "", err
	}

	op, err := c.pollUntilDone(ctx, opURL)
	if err != nil {
		return "", err
	}

	telemetry.Info("docintel.azure.completed", map[string]any{
		"model_id":    c.modelID,
		"file_name":   doc.FileName,
		"pages":       len(op.AnalyzeResult.Pages),
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})

	if op.AnalyzeResult.Content == "" {
		return "", &ExtractionError{Op: "azure analyze", Message: ErrNoContent.Error(), Err: ErrNoContent}
	}
	return op.AnalyzeResult.Content, nil
}

func (c *AzureClient) analyzeURL() string {
	q := url.Values{}
	q.Set("api-version", c.apiVersion)
	return c.endpoint + "/formrecognizer/documentModels/" + url.PathEscape(c.modelID) + ":analyze?" + q.Encode()
}

func (c *AzureClient) submit(ctx context.Context, doc Document) (string, error) {
	if len(doc.Data) == 0 {
		return "", &ExtractionError{Op: "azure submit", Message: "document is empty"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.analyzeURL(), bytes.NewReader(doc.Data))
	if err != nil {
		return "", &ExtractionError{Op: "azure submit", Err: err}
	}
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	req.Header.Set("Content-Type", contentType)
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ExtractionError{Op: "azure submit", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return "", responseError("azure submit", resp)
	}

	opURL := strings.TrimSpace(resp.Header.Get("Operation-Location"))
	if opURL == "" {
		return "", &ExtractionError{Op: "azure submit", StatusCode: resp.StatusCode, Message: "response missing Operation-Location"}
	}
	return opURL, nil
}

func (c *AzureClient) pollUntilDone(ctx context.Context, opURL string) (analyzeOperation, error) {
	failures := 0
	for {
		op, wait, err := c.pollOnce(ctx, opURL)
		if err != nil {
			if !shouldRetry(err) || failures >= maxPollRetries {
				return analyzeOperation{}, err
			}
			failures++
			telemetry.Warn("docintel.azure.poll_retry", map[string]any{
				"attempt": failures,
				"error":   err.Error(),
			})
			if err := sleep(ctx, c.pollInterval*time.Duration(failures)); err != nil {
				return analyzeOperation{}, &ExtractionError{Op: "azure poll", Err: err}
			}
			continue
		}
		failures = 0

		switch op.Status {
		case statusSucceeded:
			if op.AnalyzeResult == nil {
				op.AnalyzeResult = &analyzeResult{}
			}
			return op, nil
		case statusFailed:
			msg := op.Error.describe()
			if msg == "" {
				msg = "document analysis failed"
			}
			code := ""
			if op.Error != nil {
				code = op.Error.Code
			}
			return analyzeOperation{}, &ExtractionError{Op: "azure analyze", Code: code, Message: msg}
		case statusNotStarted, statusRunning:
		default:
			return analyzeOperation{}, &ExtractionError{Op: "azure poll", Message: fmt.Sprintf("unexpected operation status %q", op.Status)}
		}

		if err := sleep(ctx, wait); err != nil {
			return analyzeOperation{}, &ExtractionError{Op: "azure poll", Err: err}
		}
	}
}

func (c *AzureClient) pollOnce(ctx context.Context, opURL string) (analyzeOperation, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
	if err != nil {
		return analyzeOperation{}, 0, &ExtractionError{Op: "azure poll", Err: err}
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return analyzeOperation{}, 0, &ExtractionError{Op: "azure poll", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return analyzeOperation{}, 0, responseError("azure poll", resp)
	}

	var op analyzeOperation
	if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
		return analyzeOperation{}, 0, &ExtractionError{Op: "azure poll", Err: fmt.Errorf("decode operation: %w", err)}
	}
	return op, retryAfter(resp.Header, c.pollInterval), nil
}

func (c *AzureClient) authorize(req *http.Request) {
	if c.key != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	}
}

func responseError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	extErr := &ExtractionError{Op: op, StatusCode: resp.StatusCode}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		extErr.Code = env.Error.Code
		extErr.Message = env.Error.describe()
	}
	if extErr.Message == "" {
		extErr.Message = http.StatusText(resp.StatusCode)
	}
	return extErr
}

func retryAfter(h http.Header, def time.Duration) time.Duration {
	raw := strings.TrimSpace(h.Get("Retry-After"))
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
		wait := time.Duration(secs) * time.Second
		if wait < def {
			return def
		}
		return wait
	}
	return def
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Extractor = (*AzureClient)(nil)

