package rating

import (
	"math"
	"testing"

	"smartcars-insurance/internal/model"
)

func TestRiskFactor(t *testing.T) {
	tests := []struct {
		name        string
		age         int
		infractions int
		want        float64
	}{
		{"young driver", 24, 0, 1.5},
		{"lower middle bracket inclusive", 25, 0, 1.2},
		{"upper middle bracket inclusive", 40, 0, 1.2},
		{"mature bracket lower edge", 41, 0, 1.0},
		{"mature bracket upper edge", 65, 0, 1.0},
		{"senior driver", 66, 0, 1.3},
		{"infractions add linearly", 30, 2, 1.4},
		{"many infractions", 50, 10, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiskFactor(tt.age, tt.infractions)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RiskFactor(%d, %d) = %v, want %v", tt.age, tt.infractions, got, tt.want)
			}
		})
	}
}

func TestVehicleFactor(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		price float64
		want  float64
	}{
		{"new expensive car", 2021, 250000, 1.3 * 1.5},
		{"new mid-price car", 2021, 150000, 1.3 * 1.2},
		{"year 2020 boundary", 2020, 50000, 1.3},
		{"2010s car", 2015, 50000, 1.1},
		{"2000s car", 2005, 50000, 1.0},
		{"pre-2000 car", 1995, 50000, 0.9},
		{"price 200000 boundary", 2005, 200000, 1.5},
		{"price 100000 boundary", 2005, 100000, 1.2},
		{"price just below 100000", 2005, 99999, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VehicleFactor(tt.year, tt.price)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("VehicleFactor(%d, %v) = %v, want %v", tt.year, tt.price, got, tt.want)
			}
		})
	}
}

func TestVehicleFactorIdempotent(t *testing.T) {
	first := VehicleFactor(2018, 120000)
	second := VehicleFactor(2018, 120000)
	if first != second {
		t.Errorf("VehicleFactor not deterministic: %v != %v", first, second)
	}
}

func TestPremium(t *testing.T) {
	// Eligible scenario: age 30 + 2 infractions, 2021 vehicle at 150000.
	risk := RiskFactor(30, 2)
	vf := VehicleFactor(2021, 150000)

	quote, err := Premium(risk, vf, model.PlanAdvanced)
	if err != nil {
		t.Fatalf("Premium returned error: %v", err)
	}
	if math.Abs(quote.RawPremium-764.4) > 1e-9 {
		t.Errorf("RawPremium = %v, want 764.4", quote.RawPremium)
	}
	if quote.Premium != 764 {
		t.Errorf("Premium = %d, want 764", quote.Premium)
	}
}

func TestPremiumRoundTrip(t *testing.T) {
	risk := 1.7
	vf := 1.35

	quote, err := Premium(risk, vf, model.PlanAdvanced)
	if err != nil {
		t.Fatalf("Premium returned error: %v", err)
	}

	ratio := quote.RawPremium / (350 * risk * vf)
	if math.Abs(ratio-1) > 1e-9 {
		t.Errorf("rawPremium ratio = %v, want 1", ratio)
	}
}

func TestPremiumPlanBases(t *testing.T) {
	for plan, wantBase := range map[model.Plan]float64{
		model.PlanBasic:    200,
		model.PlanAdvanced: 350,
		model.PlanPremium:  500,
	} {
		quote, err := Premium(1, 1, plan)
		if err != nil {
			t.Fatalf("Premium(%s) returned error: %v", plan, err)
		}
		if quote.RawPremium != wantBase {
			t.Errorf("Premium(1, 1, %s).RawPremium = %v, want %v", plan, quote.RawPremium, wantBase)
		}
	}
}

func TestPremiumUnknownPlan(t *testing.T) {
	if _, err := Premium(1, 1, model.Plan("platinum")); err == nil {
		t.Error("expected error for unknown plan")
	}
}
