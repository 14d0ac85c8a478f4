// Package model defines the data structures of the AMOS-MVR scoring API.
//
// This package contains the wire models that represent:
//   - Scoring requests (ScoreRequest) and the optional relational-survey
//     block (MVRBlock)
//   - Scoring results (ScoreResponse) with their nested metadata, credit
//     engine, wrapper, and diagnostics blocks
//   - The error envelope (ErrorResponse) and the health probe result
//     (HealthResponse)
//
// Field names and JSON tags mirror the published OpenAPI contract exactly,
// including its mixed-case conventions (RRS_SCORE, Pz_POROSITY, isDead).
//
// # Requests
//
// A minimal valid request supplies the required identifiers and financials:
//
//	req := &model.ScoreRequest{
//		AmosID:         "EXAMPLE_ENTITY_001",
//		Sector:         model.SectorFMCGBeverage,
//		Region:         model.RegionEA,
//		Revenue:        1_000_000_000,
//		Cash:           100_000_000,
//		DaysSilent:     2,
//		OccupancyRate:  95,
//		CollectionRate: 96,
//		Currency:       "KES",
//	}
//
// All other fields are optional pointers. An absent optional field is
// omitted from the serialized body entirely, never emitted as null, so
// the engine infers it server-side. This present-vs-absent distinction is
// load-bearing: an explicit value (even zero) overrides inference.
//
// # Validation
//
// Validate checks every invariant locally and accumulates all violations:
//
//	if err := req.Validate(); err != nil {
//		var ve *model.ValidationError
//		if errors.As(err, &ve) {
//			for _, f := range ve.Fields {
//				fmt.Println(f.Field, f.Reason)
//			}
//		}
//	}
//
// Violations are reported under wire field names ("occupancy_rate",
// "mvr.trust"). A request that fails validation is never sent.
//
// # Responses
//
// ScoreResponse decodes strictly: RRS_SCORE, Pz_POROSITY, meta and
// CREDIT_ENGINE must be present or the decode fails as a whole. The nested
// blocks are opaque pass-through; the SDK exposes them typed but assigns
// no semantics. Credit-limit money fields decode into decimal.Decimal.
//
// # Thread Safety
//
// All models are plain values with no shared state; every decode produces
// a fresh instance.
package model
