package services

import (
	"math"
	"testing"
)

func TestClassifyNutrient(t *testing.T) {
	cases := []struct {
		code   int
		name   string
		symbol string
		want   NutrientGroup
	}{
		{208, "Energy", "KCAL", GroupEnergy},
		{203, "Protein", "PROT", GroupMacronutrient},
		{204, "Total lipid (fat)", "FAT", GroupMacronutrient},
		{205, "Carbohydrate", "CARB", GroupMacronutrient},
		{291, "Fibre, total dietary", "TDF", GroupMacronutrient},
		{269, "Sugars, total", "SUGAR", GroupMacronutrient},
		{401, "Vitamin C", "C", GroupVitamin},
		{415, "Vitamin B-6", "B6", GroupVitamin},
		// substring match without a listed code
		{9999, "Vitamin K", "K", GroupVitamin},
		{9999, "Something", "VIT D", GroupVitamin},
		{301, "Calcium", "CA", GroupMineral},
		{315, "Manganese", "MN", GroupMineral},
		{999, "Caffeine", "CAFFN", GroupOther},
	}
	for _, tc := range cases {
		got := ClassifyNutrient(tc.code, tc.name, tc.symbol)
		if got != tc.want {
			t.Errorf("ClassifyNutrient(%d, %q, %q) = %s, want %s", tc.code, tc.name, tc.symbol, got, tc.want)
		}
	}
}

func TestAggregateNutrientsPartition(t *testing.T) {
	readings := []NutrientReading{
		{NutrientCode: 208, Name: "Energy", ValuePer100g: 100},
		{NutrientCode: 203, Name: "Protein", ValuePer100g: 10},
		{NutrientCode: 401, Name: "Vitamin C", ValuePer100g: 5},
		{NutrientCode: 301, Name: "Calcium", ValuePer100g: 20},
		{NutrientCode: 999, Name: "Caffeine", ValuePer100g: 1},
		{NutrientCode: 204, Name: "Fat", ValuePer100g: 3},
	}

	groups := AggregateNutrients(readings, 100)

	if len(groups) != 5 {
		t.Fatalf("expected all 5 group keys, got %d", len(groups))
	}
	for _, g := range GroupOrder {
		if _, ok := groups[g]; !ok {
			t.Errorf("group %s missing from result", g)
		}
	}

	total := 0
	for _, members := range groups {
		total += len(members)
	}
	if total != len(readings) {
		t.Errorf("group sizes sum to %d, want %d", total, len(readings))
	}
}

func TestAggregateNutrientsEmptyGroupsPresent(t *testing.T) {
	groups := AggregateNutrients(nil, 100)
	if len(groups) != 5 {
		t.Fatalf("expected 5 keys for empty input, got %d", len(groups))
	}
	for g, members := range groups {
		if len(members) != 0 {
			t.Errorf("group %s should be empty, has %d members", g, len(members))
		}
	}
}

func TestScaleNutrientValue(t *testing.T) {
	// energy 100/100g and protein 10/100g at 150g display as 150.00 and 15.00
	if got := ScaleNutrientValue(100, 150); got != 150.00 {
		t.Errorf("ScaleNutrientValue(100, 150) = %v, want 150", got)
	}
	if got := ScaleNutrientValue(10, 150); got != 15.00 {
		t.Errorf("ScaleNutrientValue(10, 150) = %v, want 15", got)
	}

	// negative and NaN quantities clamp to 0
	if got := ScaleNutrientValue(50, -10); got != 0 {
		t.Errorf("negative quantity should clamp to 0, got %v", got)
	}
	if got := ScaleNutrientValue(50, math.NaN()); got != 0 {
		t.Errorf("NaN quantity should clamp to 0, got %v", got)
	}

	// rounds half away from zero
	if got := ScaleNutrientValue(0.125, 100); got != 0.13 {
		t.Errorf("ScaleNutrientValue(0.125, 100) = %v, want 0.13", got)
	}
}

func TestScaleNutrientValueIdempotentRoundTrip(t *testing.T) {
	values := []float64{0, 0.5, 1.25, 10, 33.33, 150}
	quantities := []float64{0, 50, 100, 150, 250}
	for _, v := range values {
		for _, q := range quantities {
			direct := ScaleNutrientValue(v, q)
			viaHundred := ScaleNutrientValue(ScaleNutrientValue(v, 100), q)
			if math.Abs(direct-viaHundred) > 0.01 {
				t.Errorf("scale(scale(%v,100),%v) = %v, scale(%v,%v) = %v", v, q, viaHundred, v, q, direct)
			}
		}
	}
}
