// Package api implements the gateway interfaces against the remote
// marketplace REST API. All requests carry a per-request timeout and honor
// context cancellation, and every response is decoded through the
// upstream's {success, message, ...} envelope: success=false and non-2xx
// are treated identically.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

// Client is the shared HTTP client for all upstream gateways.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the upstream client from config.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Upstream.Timeout,
		},
		logger: logger,
	}
}

// envelope mirrors the upstream response wrapper. Payload fields live at
// the top level alongside it, so the raw body is decoded a second time
// into the caller's result struct. Success is a pointer so an envelope-less
// body is distinguishable from an explicit success:false.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

type request struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any

	// multipart upload, mutually exclusive with body
	fields map[string]string
	file   *filePart
}

type filePart struct {
	fieldName   string
	filename    string
	contentType string
	reader      io.Reader
}

// do executes the request and returns the raw response body after the
// envelope has been checked. The returned error is always an AppError.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("upstream request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error())
	}

	var env envelope
	if len(body) > 0 {
		// An unparseable body on a 2xx is treated as a bare success; the
		// caller's own decode decides whether the payload matters.
		_ = json.Unmarshal(body, &env)
	}

	// An explicit success:false is a failure even on a 2xx and even when
	// the upstream omits the message.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (env.Success != nil && !*env.Success) {
		return nil, c.mapError(resp.StatusCode, env.Message)
	}

	return body, nil
}

// decode runs do and unmarshals the payload into out when out is non-nil.
func (c *Client) decode(ctx context.Context, req request, out any) error {
	body, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domainerrors.ErrUpstreamRejected.WithDetails(err.Error())
	}

	return nil
}

func (c *Client) buildRequest(ctx context.Context, req request) (*http.Request, error) {
	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var bodyReader io.Reader
	contentType := ""

	switch {
	case req.file != nil:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		for name, value := range req.fields {
			if err := writer.WriteField(name, value); err != nil {
				return nil, errors.Wrap(err, "failed to write multipart field")
			}
		}
		part, err := writer.CreateFormFile(req.file.fieldName, req.file.filename)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create multipart file")
		}
		if _, err := io.Copy(part, req.file.reader); err != nil {
			return nil, errors.Wrap(err, "failed to copy upload")
		}
		if err := writer.Close(); err != nil {
			return nil, errors.Wrap(err, "failed to finish multipart body")
		}
		bodyReader = buf
		contentType = writer.FormDataContentType()

	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	return httpReq, nil
}

// mapError converts an upstream rejection into the matching business
// error, keeping the server-provided message verbatim when there is one.
func (c *Client) mapError(status int, message string) error {
	lower := strings.ToLower(message)

	switch {
	case status == http.StatusUnauthorized:
		return domainerrors.ErrSessionExpired.WithMessage(message)
	case status == http.StatusForbidden && strings.Contains(lower, "own store"):
		return domainerrors.ErrOwnStorePurchase.WithMessage(message)
	case status == http.StatusForbidden:
		return domainerrors.ErrForbiddenRole.WithMessage(message)
	case status == http.StatusNotFound:
		return domainerrors.NewBaseError(status, "NOT_FOUND", fallback(message, "Resource not found"), "")
	case status == http.StatusConflict:
		return domainerrors.NewBaseError(status, "CONFLICT", fallback(message, "Conflicting request"), "")
	case status >= 400 && status < 500:
		return domainerrors.ErrValidationFailed.WithMessage(message)
	default:
		return domainerrors.ErrUpstreamRejected.WithMessage(message)
	}
}

func fallback(message, def string) string {
	if message == "" {
		return def
	}

	return message
}

// statusOf extracts the HTTP status carried by an AppError, or zero.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return 0
}
