// Package sdk provides the high-level entry point for the AMOS-MVR scoring
// API (African Market OS relational-risk engine).
//
// The SDK builds validated scoring requests, attaches the license
// credentials, performs the HTTP exchange, and converts every outcome into
// either a typed result or one of four typed failure kinds. It computes no
// scores itself; it is a schema and transport layer in front of the
// remote engine.
//
// # Quick Start
//
// Create a client from a Config, then call Score:
//
//	import (
//		"github.com/africanmarketos/amos-sdk-go/pkg/config"
//		"github.com/africanmarketos/amos-sdk-go/pkg/model"
//		"github.com/africanmarketos/amos-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		cfg := &config.Config{
//			LicenseKey: "YOUR_LICENSE_KEY",
//			BuyerEmail: "you@example.com",
//		}
//
//		client, err := sdk.New(cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		resp, err := client.Score(context.Background(), &model.ScoreRequest{
//			AmosID:         "EXAMPLE_ENTITY_001",
//			Sector:         model.SectorFMCGBeverage,
//			Region:         model.RegionEA,
//			Revenue:        1_000_000_000,
//			Cash:           100_000_000,
//			DaysSilent:     2,
//			OccupancyRate:  95,
//			CollectionRate: 96,
//			Currency:       "KES",
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("RRS_SCORE:", resp.RRSScore)
//	}
//
// # Operations
//
//   - Score: POST /v1/amos/score with x-mvr-license and x-buyer-email
//     headers; returns *model.ScoreResponse.
//   - Health: GET /health; returns *model.HealthResponse. Credentials are
//     attached only when Config.AuthenticatedHealth is set.
//
// # Error Handling
//
// Every failure maps into exactly one of four inspectable kinds:
//
//	var ve *model.ValidationError // local, pre-network, field-level
//	var ae *sdk.APIError          // gateway-reported, carries request_id
//	var te *sdk.TransportError    // network/timeout; caller may retry
//	var de *sdk.DecodingError     // 2xx body off-contract (drift signal)
//
//	resp, err := client.Score(ctx, req)
//	switch {
//	case errors.As(err, &ve):
//		// fix the request; nothing was sent
//	case errors.As(err, &ae):
//		// quote ae.ErrorData.RequestID to support
//	case errors.As(err, &te):
//		// transient; retry is the caller's decision
//	case errors.As(err, &de):
//		// contract drift; report it
//	}
//
// Nothing is logged-and-swallowed: a call returns a fully valid typed
// object or one of the kinds above, never a partially populated value.
//
// # Retries and Timeouts
//
// The SDK performs exactly one HTTP request per call. Config.Timeout bounds
// the whole exchange; exceeding it surfaces as a TransportError with the
// Timeout flag set. Caching, retry, and circuit breaking are deliberately
// left to the caller or an outer transport layer.
//
// # Thread Safety
//
// Config is immutable after New and calls share no mutable state, so a
// single Client is safe for concurrent use across goroutines.
//
// # See Also
//
// For runnable programs, see the examples/ directory in the repository:
//   - examples/quick-start: health probe plus a minimal score call
//   - examples/healthcheck: health probe only
package sdk
