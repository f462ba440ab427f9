// Package api is the single outbound channel to the remote recruitment
// service. Every request goes through the Gateway, which attaches the
// current credential, normalizes failures, and reports rejected credentials
// exactly once through a registered hook.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the current credential. An empty string means no
// credential; the request is still sent, authorization is the server's call.
type TokenSource interface {
	Credential() string
}

// Gateway is the uniform outbound request path.
type Gateway struct {
	baseURL        string
	client         *http.Client
	log            zerolog.Logger
	tokens         TokenSource
	onAuthRejected func()
}

// NewGateway builds a Gateway for the given base URL. A nil client gets a
// default with a 30s timeout; any timeout beyond that is whatever the
// transport provides.
func NewGateway(baseURL string, client *http.Client, log zerolog.Logger) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Gateway{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
		log:     log,
	}
}

// SetTokenSource wires the session store in as the credential reader.
func (g *Gateway) SetTokenSource(ts TokenSource) { g.tokens = ts }

// SetAuthRejectedHook registers the single global handler for rejected
// credentials. The hook must clear the local session; the gateway still
// returns domain.ErrAuthRejected to the caller so navigation can react.
func (g *Gateway) SetAuthRejectedHook(fn func()) { g.onAuthRejected = fn }

type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// GetJSON issues a GET and decodes the response body into out.
func (g *Gateway) GetJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	return g.do(ctx, request{op: op, method: http.MethodGet, path: path, query: query}, out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out.
// A nil out discards the response body.
func (g *Gateway) PostJSON(ctx context.Context, op, path string, in, out any) error {
	return g.sendJSON(ctx, op, http.MethodPost, path, in, out)
}

// PutJSON issues a PUT with a JSON body.
func (g *Gateway) PutJSON(ctx context.Context, op, path string, in, out any) error {
	return g.sendJSON(ctx, op, http.MethodPut, path, in, out)
}

// PatchJSON issues a PATCH with a JSON body.
func (g *Gateway) PatchJSON(ctx context.Context, op, path string, in, out any) error {
	return g.sendJSON(ctx, op, http.MethodPatch, path, in, out)
}

// PostMultipart issues a POST with a prepared multipart body.
func (g *Gateway) PostMultipart(ctx context.Context, op, path, contentType string, body io.Reader, out any) error {
	return g.do(ctx, request{op: op, method: http.MethodPost, path: path, body: body, contentType: contentType}, out)
}

func (g *Gateway) sendJSON(ctx context.Context, op, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", op, err)
	}
	return g.do(ctx, request{
		op:          op,
		method:      method,
		path:        path,
		body:        bytes.NewReader(payload),
		contentType: "application/json",
	}, out)
}

func (g *Gateway) do(ctx context.Context, r request, out any) error {
	target := g.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, r.body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if g.tokens != nil {
		if token := g.tokens.Credential(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(r.op, "error").Inc()
		g.log.Error().Err(err).Str("op", r.op).Msg("request transport failure")
		return &domain.RequestError{Message: domain.FallbackMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(r.op, "error").Inc()
		return &domain.RequestError{Status: resp.StatusCode, Message: domain.FallbackMessage}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.RequestsTotal.WithLabelValues(r.op, "rejected").Inc()
		metrics.AuthRejectedTotal.Inc()
		g.log.Warn().Str("op", r.op).Msg("credential rejected, clearing session")
		if g.onAuthRejected != nil {
			g.onAuthRejected()
		}
		return domain.ErrAuthRejected
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RequestsTotal.WithLabelValues(r.op, "error").Inc()
		return &domain.RequestError{Status: resp.StatusCode, Message: failureMessage(raw)}
	}

	metrics.RequestsTotal.WithLabelValues(r.op, "ok").Inc()
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", r.op, err)
	}
	return nil
}

// failureMessage extracts the conventional {"message"} field from a failure
// body, falling back to a generic string.
func failureMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return domain.FallbackMessage
}
