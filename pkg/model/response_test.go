package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const sampleScoreBody = `{
	"RRS_SCORE": 62.5,
	"Pz_POROSITY": 0.31,
	"meta": {"MVR_I": 80, "MVR_BAND": "HIGH", "HEADLINE": "Strong"},
	"CREDIT_ENGINE": {"ESTIMATED_SAFE_CREDIT_LIMIT_LOCAL": 5000000, "RECOMMENDED_ACTION": "EXTEND"}
}`

// TestScoreResponseUnmarshal_Sample verifies that a contract-shaped body
// decodes with every value accessible by field.
func TestScoreResponseUnmarshal_Sample(t *testing.T) {
	var resp ScoreResponse
	if err := json.Unmarshal([]byte(sampleScoreBody), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.RRSScore != 62.5 {
		t.Fatalf("RRSScore = %v, want 62.5", resp.RRSScore)
	}
	if resp.PzPorosity != 0.31 {
		t.Fatalf("PzPorosity = %v, want 0.31", resp.PzPorosity)
	}
	if resp.Meta.MVRI == nil || *resp.Meta.MVRI != 80 {
		t.Fatalf("Meta.MVRI = %v, want 80", resp.Meta.MVRI)
	}
	if resp.Meta.MVRBand == nil || *resp.Meta.MVRBand != "HIGH" {
		t.Fatalf("Meta.MVRBand = %v, want HIGH", resp.Meta.MVRBand)
	}
	if resp.Meta.Headline == nil || *resp.Meta.Headline != "Strong" {
		t.Fatalf("Meta.Headline = %v, want Strong", resp.Meta.Headline)
	}

	limit := resp.CreditEngine.EstimatedSafeCreditLimitLocal
	if limit == nil || !limit.Equal(decimal.NewFromInt(5000000)) {
		t.Fatalf("EstimatedSafeCreditLimitLocal = %v, want 5000000", limit)
	}
	if resp.CreditEngine.RecommendedAction == nil || *resp.CreditEngine.RecommendedAction != "EXTEND" {
		t.Fatalf("RecommendedAction = %v, want EXTEND", resp.CreditEngine.RecommendedAction)
	}
}

// TestScoreResponseUnmarshal_OptionalBlocks verifies that the pass-through
// blocks decode when present and stay nil when absent.
func TestScoreResponseUnmarshal_OptionalBlocks(t *testing.T) {
	body := `{
		"RRS_SCORE": 40,
		"RRS_CONFIDENT": 38.2,
		"RRS_CONFIDENCE": 91,
		"RRS_CONFIDENCE_INTERVAL": {"lower": 35, "upper": 45, "error": 2.1},
		"Pz_POROSITY": 0.6,
		"meta": {
			"ghosting": {"flag": true, "isDead": false, "days_to_ghost": 45},
			"CASH_METRICS": {"cash_runway_days": 90, "runwayState": "WATCH"},
			"FLAGS": ["FX_STRESS"]
		},
		"CREDIT_ENGINE": {},
		"WRAPPER": {"version": "1.0.3", "request_id": "req_w1", "timestamp": "2026-08-23T10:00:00Z"},
		"MODEL_METADATA": {"model_version": "4.2.0", "physics_framework": "AMOS-CORE"}
	}`

	var resp ScoreResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.RRSConfidence == nil || *resp.RRSConfidence != 91 {
		t.Fatalf("RRSConfidence = %v, want 91", resp.RRSConfidence)
	}
	if resp.RRSConfidenceInterval == nil || resp.RRSConfidenceInterval.Upper != 45 {
		t.Fatalf("confidence interval = %+v", resp.RRSConfidenceInterval)
	}
	g := resp.Meta.Ghosting
	if g == nil || g.Flag == nil || !*g.Flag || g.DaysToGhost == nil || *g.DaysToGhost != 45 {
		t.Fatalf("ghosting block = %+v", g)
	}
	cm := resp.Meta.CashMetrics
	if cm == nil || cm.RunwayState == nil || *cm.RunwayState != "WATCH" {
		t.Fatalf("cash metrics block = %+v", cm)
	}
	if len(resp.Meta.Flags) != 1 || resp.Meta.Flags[0] != "FX_STRESS" {
		t.Fatalf("flags = %v", resp.Meta.Flags)
	}
	if resp.Wrapper == nil || resp.Wrapper.RequestID == nil || *resp.Wrapper.RequestID != "req_w1" {
		t.Fatalf("wrapper block = %+v", resp.Wrapper)
	}
	if resp.ModelMetadata == nil || *resp.ModelMetadata.ModelVersion != "4.2.0" {
		t.Fatalf("model metadata block = %+v", resp.ModelMetadata)
	}
}

// TestScoreResponseUnmarshal_MissingRequired verifies that a body missing
// any contractually required field fails to decode as a whole, naming the
// missing field.
func TestScoreResponseUnmarshal_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "no score",
			body: `{"Pz_POROSITY":0.3,"meta":{},"CREDIT_ENGINE":{}}`,
			want: "RRS_SCORE",
		},
		{
			name: "no porosity",
			body: `{"RRS_SCORE":50,"meta":{},"CREDIT_ENGINE":{}}`,
			want: "Pz_POROSITY",
		},
		{
			name: "no meta",
			body: `{"RRS_SCORE":50,"Pz_POROSITY":0.3,"CREDIT_ENGINE":{}}`,
			want: "meta",
		},
		{
			name: "no credit engine",
			body: `{"RRS_SCORE":50,"Pz_POROSITY":0.3,"meta":{}}`,
			want: "CREDIT_ENGINE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ScoreResponse
			err := json.Unmarshal([]byte(tt.body), &resp)
			if err == nil {
				t.Fatal("expected decode error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not name %q", err, tt.want)
			}
		})
	}
}

func TestScoreResponseUnmarshal_TypeMismatch(t *testing.T) {
	body := `{"RRS_SCORE":"high","Pz_POROSITY":0.3,"meta":{},"CREDIT_ENGINE":{}}`
	var resp ScoreResponse
	if err := json.Unmarshal([]byte(body), &resp); err == nil {
		t.Fatal("expected decode error for string score")
	}
}

func TestHealthResponseUnmarshal(t *testing.T) {
	body := `{"status":"ok","version":"4.2.0","wrapper":"1.0.3","request_id":"req_h1","timestamp":"2026-08-23T10:00:00Z"}`

	var resp HealthResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.Status != "ok" || resp.Version != "4.2.0" || resp.Wrapper != "1.0.3" {
		t.Fatalf("unexpected health response: %+v", resp)
	}
	want := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	if !resp.Timestamp.Equal(want) {
		t.Fatalf("timestamp = %v, want %v", resp.Timestamp, want)
	}
}
