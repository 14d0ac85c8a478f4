// Package model defines the wire data structures of the AMOS-MVR scoring
// API: the score request with its optional relational-survey block, the
// score/health responses with their nested result blocks, and the error
// envelope. Field names and JSON tags mirror the published OpenAPI contract.
package model

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sector tags the entity's industry and selects the physics and rhythms
// applied by the scoring engine.
type Sector string

// Sectors accepted by the scoring engine.
const (
	SectorGeneric          Sector = "GENERIC"
	SectorFintech          Sector = "FINTECH"
	SectorFMCGRetail       Sector = "FMCG_RETAIL"
	SectorFMCGBeverage     Sector = "FMCG_BEVERAGE"
	SectorFMCGOils         Sector = "FMCG_OILS"
	SectorFMCGDairy        Sector = "FMCG_DAIRY"
	SectorFMCGPersonalCare Sector = "FMCG_PERSONAL_CARE"
	SectorFMCGFoods        Sector = "FMCG_FOODS"
	SectorFMCGAlcohol      Sector = "FMCG_ALCOHOL"
)

// Region is the region code used for seasonal pressure.
type Region string

// Regions accepted by the scoring engine.
const (
	RegionEA      Region = "EA"
	RegionWA      Region = "WA"
	RegionZA      Region = "ZA"
	RegionGeneric Region = "GENERIC"
)

// MVRBlock carries explicit Minimum Viable Relationships (MVR) scores.
//
// Every dimension is optional: when the block (or a dimension) is omitted,
// AMOS infers MVR-I and the missing dimensions from financial and activity
// signals server-side. The SDK never fills in defaults; omitted means
// omitted on the wire.
type MVRBlock struct {
	// MVRI is the Minimum Viable Relationships Index (0-100).
	MVRI              *float64 `json:"mvr_i,omitempty" validate:"omitempty,gte=0,lte=100"`
	Embeddedness      *float64 `json:"embeddedness,omitempty" validate:"omitempty,gte=0,lte=100"`
	Trust             *float64 `json:"trust,omitempty" validate:"omitempty,gte=0,lte=100"`
	CulturalFit       *float64 `json:"cultural_fit,omitempty" validate:"omitempty,gte=0,lte=100"`
	Reciprocity       *float64 `json:"reciprocity,omitempty" validate:"omitempty,gte=0,lte=100"`
	GuardianVouchers  *float64 `json:"guardian_vouchers,omitempty" validate:"omitempty,gte=0,lte=100"`
	Continuity        *float64 `json:"continuity,omitempty" validate:"omitempty,gte=0,lte=100"`
	ChannelPermission *float64 `json:"channel_permission,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// ScoreRequest is one AMOS scoring request. It maps field-for-field to the
// OpenAPI AMOSScoreRequest schema: required core identifiers and
// financials, then optional aliases, operational metrics, FX and corridor
// inputs, credit configuration, and the relational block.
//
// Optional fields are pointers so that an absent value is omitted from the
// serialized body entirely; emitting null would trigger the engine's
// explicit-override semantics where inference was intended.
type ScoreRequest struct {
	// AmosID is the stable identifier for this entity within your systems.
	AmosID string `json:"amos_id" validate:"required"`
	Sector Sector `json:"sector" validate:"required,oneof=GENERIC FINTECH FMCG_RETAIL FMCG_BEVERAGE FMCG_OILS FMCG_DAIRY FMCG_PERSONAL_CARE FMCG_FOODS FMCG_ALCOHOL"`
	Region Region `json:"region" validate:"required,oneof=EA WA ZA GENERIC"`

	// Revenue is annual revenue in local currency.
	Revenue float64 `json:"revenue" validate:"gte=0"`
	// Cash is cash and cash-equivalents in local currency.
	Cash float64 `json:"cash" validate:"gte=0"`
	// DaysSilent counts whole days since the last observed activity.
	DaysSilent int `json:"days_silent" validate:"gte=0"`
	// OccupancyRate is utilization/occupancy as a percentage.
	OccupancyRate float64 `json:"occupancy_rate" validate:"gte=0,lte=100"`
	// CollectionRate is the collection rate as a percentage.
	CollectionRate float64 `json:"collection_rate" validate:"gte=0,lte=100"`
	// Currency is a 3-letter ISO or local currency code (e.g. KES, ZAR, GHS).
	Currency string `json:"currency" validate:"required,len=3,alpha"`

	// Optional identifiers / aliases.
	ID        *string `json:"id,omitempty"`
	Name      *string `json:"name,omitempty"`
	LegalName *string `json:"legal_name,omitempty"`

	// Optional financials & operational metrics.
	TotalRevenue          *float64 `json:"total_revenue,omitempty" validate:"omitempty,gte=0"`
	Expenses              *float64 `json:"expenses,omitempty" validate:"omitempty,gte=0"`
	Opex                  *float64 `json:"opex,omitempty" validate:"omitempty,gte=0"`
	CashBalance           *float64 `json:"cash_balance,omitempty" validate:"omitempty,gte=0"`
	TotalDebt             *float64 `json:"total_debt,omitempty" validate:"omitempty,gte=0"`
	DebtTotal             *float64 `json:"debt_total,omitempty" validate:"omitempty,gte=0"`
	Arrears               *float64 `json:"arrears,omitempty" validate:"omitempty,gte=0"`
	Overdue               *float64 `json:"overdue,omitempty" validate:"omitempty,gte=0"`
	RevenueGrowth         *float64 `json:"revenue_growth,omitempty"`
	DaysSinceLastActivity *float64 `json:"days_since_last_activity,omitempty" validate:"omitempty,gte=0"`
	DaysSinceLastScan     *float64 `json:"days_since_last_scan,omitempty" validate:"omitempty,gte=0"`
	GuardianEndorsements  *float64 `json:"guardian_endorsements,omitempty" validate:"omitempty,gte=0"`
	NumberOfCustomers     *float64 `json:"number_of_customers,omitempty" validate:"omitempty,gte=0"`
	NumberOfSuppliers     *float64 `json:"number_of_suppliers,omitempty" validate:"omitempty,gte=0"`
	// GrantDependency is the fraction of revenue that is grant/donor funded.
	GrantDependency *float64 `json:"grant_dependency,omitempty" validate:"omitempty,gte=0,lte=1"`
	ActiveUsers     *float64 `json:"active_users,omitempty" validate:"omitempty,gte=0"`
	ActiveCustomers *float64 `json:"active_customers,omitempty" validate:"omitempty,gte=0"`

	// SKUSales8W holds SKU-level sales volumes for up to 8 weeks.
	SKUSales8W    []float64 `json:"sku_sales_8w,omitempty" validate:"omitempty,max=8"`
	PromoUnits    *float64  `json:"promo_units,omitempty" validate:"omitempty,gte=0"`
	BaselineUnits *float64  `json:"baseline_units,omitempty" validate:"omitempty,gte=0"`

	// FX & currency.
	FXRate        *float64 `json:"fx_rate,omitempty" validate:"omitempty,gte=0"`
	FXRate12MAgo  *float64 `json:"fx_rate_12m_ago,omitempty" validate:"omitempty,gte=0"`
	ForwardCover  *float64 `json:"forward_cover,omitempty" validate:"omitempty,gte=0"`
	FXExposedDebt *float64 `json:"fx_exposed_debt,omitempty" validate:"omitempty,gte=0"`

	// Infrastructure & corridor.
	OutageHoursPerDay   *float64 `json:"outage_hours_per_day,omitempty" validate:"omitempty,gte=0"`
	DieselShareOpex     *float64 `json:"diesel_share_opex,omitempty" validate:"omitempty,gte=0,lte=1"`
	CorridorID          *string  `json:"corridor_id,omitempty"`
	PortDwellDays       *float64 `json:"port_dwell_days,omitempty" validate:"omitempty,gte=0"`
	TruckTurnaroundDays *float64 `json:"truck_turnaround_days,omitempty" validate:"omitempty,gte=0"`

	// Credit configuration.
	CurrentCreditLimitLocal *float64 `json:"current_credit_limit_local,omitempty" validate:"omitempty,gte=0"`
	PrevGhosting            *float64 `json:"prev_ghosting,omitempty"`

	// Relational / text.
	MVR *MVRBlock `json:"mvr,omitempty"`
	// UnstructuredText is a free-text description; the engine scans it for
	// fraud / scandal / social sanction language.
	UnstructuredText *string `json:"unstructured_text,omitempty"`
}

// validate is the shared validator instance. The tag-name hook makes
// violations report wire field names (json tags) instead of Go names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every invariant of the request and accumulates all
// violations into a single *ValidationError, so one pass gives the caller
// the complete picture. It performs no network access; a request that
// fails here is never sent.
func (r *ScoreRequest) Validate() error {
	if r == nil {
		return &ValidationError{Fields: []FieldViolation{{Field: "request", Reason: "is required"}}}
	}

	violations := nonFiniteViolations(reflect.ValueOf(r).Elem(), "")

	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			// InvalidValidationError: not a field violation but a broken
			// input value.
			return err
		}
		flagged := make(map[string]bool, len(violations))
		for _, v := range violations {
			flagged[v.Field] = true
		}
		for _, fe := range verrs {
			// A non-finite value can also trip a range tag (NaN fails
			// gte); the finiteness report is the accurate one.
			if path := fieldPath(fe); !flagged[path] {
				violations = append(violations, FieldViolation{
					Field:  path,
					Reason: violationReason(fe),
				})
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Fields: violations}
}

// nonFiniteViolations walks every float field of the request (pointers,
// slices, and the nested relational block included) and reports NaN or
// infinity under the wire name. json.Marshal cannot represent non-finite
// values, so they must be rejected before the transport layer sees them.
func nonFiniteViolations(v reflect.Value, prefix string) []FieldViolation {
	var out []FieldViolation
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		f := v.Field(i)
		switch f.Kind() {
		case reflect.Float64:
			if !isFinite(f.Float()) {
				out = append(out, FieldViolation{Field: name, Reason: "must be finite"})
			}
		case reflect.Pointer:
			if f.IsNil() {
				continue
			}
			switch e := f.Elem(); e.Kind() {
			case reflect.Float64:
				if !isFinite(e.Float()) {
					out = append(out, FieldViolation{Field: name, Reason: "must be finite"})
				}
			case reflect.Struct:
				out = append(out, nonFiniteViolations(e, name)...)
			}
		case reflect.Slice:
			if f.Type().Elem().Kind() != reflect.Float64 {
				continue
			}
			for j := 0; j < f.Len(); j++ {
				if !isFinite(f.Index(j).Float()) {
					out = append(out, FieldViolation{Field: name, Reason: "must be finite"})
					break
				}
			}
		}
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// fieldPath strips the root struct name from the namespace, leaving the
// wire path of the offending field (e.g. "mvr.trust").
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func violationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "alpha":
		return "must contain only letters"
	case "max":
		return "must have at most " + fe.Param() + " elements"
	default:
		return "violates constraint " + fe.Tag()
	}
}
