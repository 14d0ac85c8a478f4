// Package sdk exposes the high-level AMOS-MVR client. It wires together
// the validated request models, license-header injection, and the HTTP
// exchange against the AMOS gateway, and maps every outcome into either a
// typed result or one of four typed failure kinds.
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/africanmarketos/amos-sdk-go/pkg/config"
	"github.com/africanmarketos/amos-sdk-go/pkg/model"
)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Client is the AMOS-MVR API client. It holds an immutable Config and a
// single HTTP client; it keeps no per-call state, so one Client is safe
// for concurrent use and every call is independently repeatable.
type Client struct {
	cfg  *config.Config
	http *http.Client
}

// New validates the configuration (applying defaults) and returns a Client
// bound to it. The Config must not be mutated afterwards.
func New(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Score computes the AMOS relational risk score, porosity, MVR assessment,
// and safe credit limits for one entity via POST /v1/amos/score.
//
// The request is validated locally first; an invalid request fails with
// *model.ValidationError before any network I/O. Remaining failure kinds:
// *APIError (gateway rejected the request), *TransportError (network or
// timeout), *DecodingError (2xx body off-contract).
func (c *Client) Score(ctx context.Context, req *model.ScoreRequest) (*model.ScoreResponse, error) {
	if req == nil {
		return nil, &model.ValidationError{Fields: []model.FieldViolation{{Field: "request", Reason: "is required"}}}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	x, err := c.exchange(ctx, "score", http.MethodPost, scorePath, req, true)
	if err != nil {
		return nil, err
	}
	if !x.ok() {
		return nil, apiFailure(x)
	}

	var out model.ScoreResponse
	if err := json.Unmarshal(x.body, &out); err != nil {
		return nil, &DecodingError{What: "score response", Err: err}
	}
	return &out, nil
}

// Health probes GET /health and reports gateway status, engine version,
// wrapper version, and timestamp. License headers are attached only when
// Config.AuthenticatedHealth is set; the published contract does not
// require them here.
func (c *Client) Health(ctx context.Context) (*model.HealthResponse, error) {
	x, err := c.exchange(ctx, "health", http.MethodGet, healthPath, nil, c.cfg.AuthenticatedHealth)
	if err != nil {
		return nil, err
	}
	if !x.ok() {
		return nil, apiFailure(x)
	}

	var out model.HealthResponse
	if err := json.Unmarshal(x.body, &out); err != nil {
		return nil, &DecodingError{What: "health response", Err: err}
	}
	return &out, nil
}
