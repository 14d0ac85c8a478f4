package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/africanmarketos/amos-sdk-go/pkg/model"
)

const (
	scorePath  = "/v1/amos/score"
	healthPath = "/health"

	headerLicense    = "x-mvr-license"
	headerBuyerEmail = "x-buyer-email"

	userAgent = "amos-sdk-go/1.0.0"
)

// rawExchange is the raw outcome of one completed HTTP round trip: status
// code plus body bytes, before any contract interpretation. Transport
// failures never produce one.
type rawExchange struct {
	status int
	body   []byte
}

func (x *rawExchange) ok() bool { return x.status >= 200 && x.status < 300 }

// exchange performs exactly one HTTP request. payload, when non-nil, is
// serialized to JSON; credentialed attaches the license headers. Any
// network-level problem (including the Config.Timeout deadline) comes back
// as a *TransportError; there is no retry at this layer.
func (c *Client) exchange(ctx context.Context, op, method, path string, payload any, credentialed bool) (*rawExchange, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &TransportError{Op: op, Err: fmt.Errorf("encode request body: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credentialed {
		req.Header.Set(headerLicense, c.cfg.LicenseKey)
		req.Header.Set(headerBuyerEmail, c.cfg.BuyerEmail)
	}

	if c.cfg.Debug {
		zap.L().Debug("amos request", zap.String("method", method), zap.String("path", path))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Timeout: isTimeout(err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Timeout: isTimeout(err), Err: fmt.Errorf("read response body: %w", err)}
	}

	if c.cfg.Debug {
		zap.L().Debug("amos response", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(raw)))
	}

	return &rawExchange{status: resp.StatusCode, body: raw}, nil
}

// apiFailure maps a non-2xx exchange into an *APIError. If the body is not
// a well-formed error envelope, a minimal one is synthesized from the
// status and raw text, keeping any request_id the payload did carry; if
// the envelope decodes but lacks a request_id, the anomaly is recorded in
// the details rather than silently defaulted.
func apiFailure(x *rawExchange) *APIError {
	var envelope model.ErrorResponse
	if err := json.Unmarshal(x.body, &envelope); err != nil || envelope.Error == "" {
		return &APIError{
			StatusCode: x.status,
			ErrorData: model.ErrorResponse{
				Error:     fmt.Sprintf("non-JSON error response from AMOS API (status %d)", x.status),
				Details:   map[string]any{"text": string(x.body)},
				RequestID: envelope.RequestID,
			},
		}
	}

	if envelope.RequestID == "" {
		if envelope.Details == nil {
			envelope.Details = map[string]any{}
		}
		envelope.Details["_anomaly"] = "error payload missing request_id"
	}

	return &APIError{StatusCode: x.status, ErrorData: envelope}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
