package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ConfidenceInterval bounds the headline score estimate.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Error float64 `json:"error"`
}

// GhostingBlock carries the engine's silent-death (ghosting) diagnostics.
// Field casing follows the wire contract, which mixes snake and camel case.
type GhostingBlock struct {
	Flag                *bool    `json:"flag,omitempty"`
	IsDead              *bool    `json:"isDead,omitempty"`
	Impact              *float64 `json:"impact,omitempty"`
	SurvivalProbability *float64 `json:"survival_probability,omitempty"`
	DaysToGhost         *float64 `json:"days_to_ghost,omitempty"`
	ExpectedRhythm      *float64 `json:"expectedRhythm,omitempty"`
}

// ExplanationBlock holds the engine's human-readable score narrative.
type ExplanationBlock struct {
	Porosity               *string `json:"porosity,omitempty"`
	MVRShield              *string `json:"mvr_shield,omitempty"`
	MVRShieldFactor        *string `json:"mvr_shield_factor,omitempty"`
	FinalContainedPD       *string `json:"final_contained_pd,omitempty"`
	ShieldImpactPercentage *string `json:"shield_impact_percentage,omitempty"`
	Headline               *string `json:"headline,omitempty"`
	RiskNarrative          *string `json:"risk_narrative,omitempty"`
}

// CashMetricsBlock reports runway and burn diagnostics.
type CashMetricsBlock struct {
	CashRunwayDays *int `json:"cash_runway_days,omitempty"`
	// RunwayState is one of CRITICAL, DANGER, WATCH, HEALTHY, STRONG.
	RunwayState    *string  `json:"runwayState,omitempty"`
	NetCash        *float64 `json:"net_cash,omitempty"`
	BurnRatePerDay *float64 `json:"burn_rate_per_day,omitempty"`
}

// DiagnosticsBlock carries auxiliary engine diagnostics.
type DiagnosticsBlock struct {
	AFIScore            *float64 `json:"AFI_SCORE,omitempty"`
	PotemkinRawGap      *float64 `json:"POTEMKIN_RAW_GAP,omitempty"`
	PotemkinGap         *float64 `json:"POTEMKIN_GAP,omitempty"`
	CannibalisationRisk *float64 `json:"CANNIBALISATION_RISK,omitempty"`
	SKUVolatilityCV     *float64 `json:"SKU_VOLATILITY_CV,omitempty"`
	SKUSampleSize       *int     `json:"SKU_SAMPLE_SIZE,omitempty"`
}

// AMOSMeta is the metadata block of a score response. The SDK decodes and
// exposes it typed but never interprets it; semantics belong to the
// remote engine.
type AMOSMeta struct {
	Explanation *ExplanationBlock `json:"EXPLANATION,omitempty"`

	Sector          *string  `json:"SECTOR,omitempty"`
	Region          *string  `json:"REGION,omitempty"`
	GrantDependency *float64 `json:"GRANT_DEPENDENCY,omitempty"`
	DaysSilent      *float64 `json:"DAYS_SILENT,omitempty"`
	PDGhost         *float64 `json:"PD_GHOST,omitempty"`

	Ghosting *GhostingBlock `json:"ghosting,omitempty"`

	HasPotemkinRisk *bool `json:"HAS_POTEMKIN_RISK,omitempty"`
	// PotemkinGapBand is one of NONE, LOW, HIGH.
	PotemkinGapBand *string `json:"POTEMKIN_GAP_BAND,omitempty"`

	MVRI *float64 `json:"MVR_I,omitempty"`
	// MVRBand is one of EMBEDDED, VIABLE, FRAGILE.
	MVRBand                *string  `json:"MVR_BAND,omitempty"`
	MVRStrongestDimensions []string `json:"MVR_STRONGEST_DIMENSIONS,omitempty"`
	MVRWeakestDimensions   []string `json:"MVR_WEAKEST_DIMENSIONS,omitempty"`

	MVRRV *float64 `json:"MVR_RV,omitempty"`
	MVRWV *float64 `json:"MVR_WV,omitempty"`
	MVRGD *float64 `json:"MVR_GD,omitempty"`
	MVREQ *float64 `json:"MVR_EQ,omitempty"`
	MVRAS *float64 `json:"MVR_AS,omitempty"`
	MVRRC *float64 `json:"MVR_RC,omitempty"`

	CollectionRate *float64 `json:"COLLECTION_RATE,omitempty"`

	FXGapRatio       *float64 `json:"FX_GAP_RATIO,omitempty"`
	FXPDMultiplier   *float64 `json:"FX_PD_MULTIPLIER,omitempty"`
	ColdChainLeakage *float64 `json:"COLD_CHAIN_LEAKAGE,omitempty"`
	CorridorLeakage  *float64 `json:"CORRIDOR_LEAKAGE,omitempty"`

	PromoIncrementality *float64 `json:"PROMO_INCREMENTALITY,omitempty"`
	PromoQuality        *string  `json:"PROMO_QUALITY,omitempty"`

	DaysToDeathCapped *bool   `json:"DAYS_TO_DEATH_CAPPED,omitempty"`
	TimelineSource    *string `json:"TIMELINE_SOURCE,omitempty"`
	TimelineTrend     *string `json:"TIMELINE_TREND,omitempty"`

	DataCompletenessScore *int     `json:"DATA_COMPLETENESS_SCORE,omitempty"`
	MissingFields         []string `json:"MISSING_FIELDS,omitempty"`
	CriticalMissingFields []string `json:"CRITICAL_MISSING_FIELDS,omitempty"`

	MVRGateDecision *string  `json:"MVR_GATE_DECISION,omitempty"`
	MVRGateReasons  []string `json:"MVR_GATE_REASONS,omitempty"`

	CompassFitBand     *string `json:"COMPASS_FIT_BAND,omitempty"`
	CompassMVRQuadrant *string `json:"COMPASS_MVR_QUADRANT,omitempty"`

	Headline *string  `json:"HEADLINE,omitempty"`
	Flags    []string `json:"FLAGS,omitempty"`

	NetworkHealth *float64 `json:"NETWORK_HEALTH,omitempty"`

	CashMetrics *CashMetricsBlock `json:"CASH_METRICS,omitempty"`
	Diagnostics *DiagnosticsBlock `json:"DIAGNOSTICS,omitempty"`

	SeasonalFactor      *float64 `json:"SEASONAL_FACTOR,omitempty"`
	GrantHaircutApplied *bool    `json:"GRANT_HAIRCUT_APPLIED,omitempty"`
}

// CreditEngineBlock is the engine's safe-credit recommendation. Money
// amounts decode into decimal.Decimal so local-currency limits survive
// the trip without float drift.
type CreditEngineBlock struct {
	EstimatedSafeCreditLimitLocal *decimal.Decimal `json:"ESTIMATED_SAFE_CREDIT_LIMIT_LOCAL,omitempty"`
	EstimatedSafeCreditLimitUSD   *decimal.Decimal `json:"ESTIMATED_SAFE_CREDIT_LIMIT_USD,omitempty"`
	RecommendedAction             *string          `json:"RECOMMENDED_ACTION,omitempty"`
	MVRDecision                   *string          `json:"MVR_DECISION,omitempty"`
	SeasonalFactor                *float64         `json:"SEASONAL_FACTOR,omitempty"`
	GrantHaircutApplied           *bool            `json:"GRANT_HAIRCUT_APPLIED,omitempty"`
	ExposureToRevenueRatio        *float64         `json:"EXPOSURE_TO_REVENUE_RATIO,omitempty"`
	RecommendedToCurrentRatio     *float64         `json:"RECOMMENDED_TO_CURRENT_RATIO,omitempty"`
}

// WrapperBlock identifies the gateway wrapper that served the request.
type WrapperBlock struct {
	Version     *string    `json:"version,omitempty"`
	CoreVersion *string    `json:"core_version,omitempty"`
	RequestID   *string    `json:"request_id,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

// ModelMetadata identifies the scoring model that produced the result.
type ModelMetadata struct {
	ModelVersion     *string `json:"model_version,omitempty"`
	CoreVersion      *string `json:"core_version,omitempty"`
	WrapperVersion   *string `json:"wrapper_version,omitempty"`
	CalibrationDate  *string `json:"calibration_date,omitempty"`
	RegulatoryStatus *string `json:"regulatory_status,omitempty"`
	PhysicsFramework *string `json:"physics_framework,omitempty"`
}

// ScoreResponse is a successful scoring result. RRSScore, PzPorosity, Meta
// and CreditEngine are required by the contract; UnmarshalJSON rejects a
// body that omits any of them, so a decoded value is never partially
// populated. The remaining blocks are pass-through and may be absent on
// older engine versions.
type ScoreResponse struct {
	// RRSScore is the headline relational risk score.
	RRSScore              float64             `json:"RRS_SCORE"`
	RRSConfident          *float64            `json:"RRS_CONFIDENT,omitempty"`
	RRSConfidence         *int                `json:"RRS_CONFIDENCE,omitempty"`
	RRSConfidenceInterval *ConfidenceInterval `json:"RRS_CONFIDENCE_INTERVAL,omitempty"`
	// PzPorosity is the porosity metric.
	PzPorosity    float64           `json:"Pz_POROSITY"`
	Meta          AMOSMeta          `json:"meta"`
	CreditEngine  CreditEngineBlock `json:"CREDIT_ENGINE"`
	Wrapper       *WrapperBlock     `json:"WRAPPER,omitempty"`
	ModelMetadata *ModelMetadata    `json:"MODEL_METADATA,omitempty"`
}

// UnmarshalJSON decodes strictly: the four contractually required fields
// must all be present or the whole decode fails, naming what is missing.
func (r *ScoreResponse) UnmarshalJSON(data []byte) error {
	type plain ScoreResponse
	aux := struct {
		RRSScore     *float64           `json:"RRS_SCORE"`
		PzPorosity   *float64           `json:"Pz_POROSITY"`
		Meta         *AMOSMeta          `json:"meta"`
		CreditEngine *CreditEngineBlock `json:"CREDIT_ENGINE"`
		*plain
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var missing []string
	if aux.RRSScore == nil {
		missing = append(missing, "RRS_SCORE")
	}
	if aux.PzPorosity == nil {
		missing = append(missing, "Pz_POROSITY")
	}
	if aux.Meta == nil {
		missing = append(missing, "meta")
	}
	if aux.CreditEngine == nil {
		missing = append(missing, "CREDIT_ENGINE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("score response missing required field(s): %s", strings.Join(missing, ", "))
	}

	r.RRSScore = *aux.RRSScore
	r.PzPorosity = *aux.PzPorosity
	r.Meta = *aux.Meta
	r.CreditEngine = *aux.CreditEngine
	return nil
}

// ErrorResponse is the error envelope returned for validation,
// data-quality veto, auth, or internal failures. RequestID correlates the
// failure with gateway logs for support; a well-formed error payload
// always carries one.
type ErrorResponse struct {
	Error     string         `json:"error"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// HealthResponse is the result of the /health probe.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Wrapper   string    `json:"wrapper"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
