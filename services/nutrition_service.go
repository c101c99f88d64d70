// services/nutrition_service.go
package services

import (
	"math"
	"strings"
)

// NutrientGroup is the display taxonomy for a food's nutrient table.
type NutrientGroup string

const (
	GroupEnergy        NutrientGroup = "energy"
	GroupMacronutrient NutrientGroup = "macronutrient"
	GroupVitamin       NutrientGroup = "vitamin"
	GroupMineral       NutrientGroup = "mineral"
	GroupOther         NutrientGroup = "other"
)

// GroupOrder is the fixed rendering order of the taxonomy.
var GroupOrder = []NutrientGroup{
	GroupEnergy, GroupMacronutrient, GroupVitamin, GroupMineral, GroupOther,
}

// NutrientCodeEnergy is the CNF code for energy in kcal.
const NutrientCodeEnergy = 208

var macronutrientCodes = map[int]bool{
	203: true, // protein
	204: true, // fat
	205: true, // carbohydrate
	291: true, // fibre
	269: true, // sugars
}

var vitaminCodes = map[int]bool{
	401: true, 404: true, 405: true, 406: true, 410: true, 415: true, 418: true,
}

var mineralCodes = map[int]bool{
	301: true, 303: true, 304: true, 305: true, 306: true, 307: true, 309: true, 312: true, 315: true,
}

// NutrientReading is one per-100g row for a food, already joined with the
// nutrient reference table.
type NutrientReading struct {
	NutrientCode int     `json:"nutrient_code"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Unit         string  `json:"unit"`
	ValuePer100g float64 `json:"value_per_100g"`
}

// ScaledNutrient is a reading with its value scaled to the requested quantity.
type ScaledNutrient struct {
	NutrientReading
	Value float64 `json:"value"`
}

// ClassifyNutrient maps a reading onto the taxonomy. The code table must stay
// byte-for-byte compatible with the seeded reference data: 208 is energy,
// 203/204/205/291/269 are macronutrients, vitamins match either the code list
// or a "vitamin"/"vit" substring in the name or symbol, minerals match their
// code list, everything else is other.
func ClassifyNutrient(code int, name, symbol string) NutrientGroup {
	if code == NutrientCodeEnergy {
		return GroupEnergy
	}
	if macronutrientCodes[code] {
		return GroupMacronutrient
	}
	n := strings.ToLower(name)
	s := strings.ToLower(symbol)
	if vitaminCodes[code] ||
		strings.Contains(n, "vitamin") || strings.Contains(n, "vit") ||
		strings.Contains(s, "vitamin") || strings.Contains(s, "vit") {
		return GroupVitamin
	}
	if mineralCodes[code] {
		return GroupMineral
	}
	return GroupOther
}

// ScaleNutrientValue converts a per-100g value to the given quantity in
// grams. Scaling is linear; the result is rounded to 2 decimals,
// half away from zero. Negative quantities are clamped to 0.
func ScaleNutrientValue(valuePer100g, quantity float64) float64 {
	if quantity < 0 || math.IsNaN(quantity) {
		quantity = 0
	}
	return round2(valuePer100g * quantity / 100)
}

// AggregateNutrients partitions readings into the five groups with values
// scaled to quantity grams. All five keys are always present, possibly
// empty; rendering decides which to show.
func AggregateNutrients(readings []NutrientReading, quantity float64) map[NutrientGroup][]ScaledNutrient {
	out := map[NutrientGroup][]ScaledNutrient{
		GroupEnergy:        {},
		GroupMacronutrient: {},
		GroupVitamin:       {},
		GroupMineral:       {},
		GroupOther:         {},
	}
	for _, r := range readings {
		g := ClassifyNutrient(r.NutrientCode, r.Name, r.Symbol)
		out[g] = append(out[g], ScaledNutrient{
			NutrientReading: r,
			Value:           ScaleNutrientValue(r.ValuePer100g, quantity),
		})
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
