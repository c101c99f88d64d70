package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	if err != nil {
		t.Fatalf("CalculateBMI: %v", err)
	}
	if bmi != 25.0 {
		t.Errorf("bmi = %v, want 25.0", bmi)
	}
	if got := BMICategory(bmi); got != "Overweight" {
		t.Errorf("category = %q, want Overweight", got)
	}
}

func TestCalculateBMIRejectsGarbage(t *testing.T) {
	if _, err := CalculateBMI(0, 80); err == nil {
		t.Error("zero height should error")
	}
	if _, err := CalculateBMI(180, -5); err == nil {
		t.Error("negative weight should error")
	}
	if _, err := CalculateBMI(300, 80); err == nil {
		t.Error("implausible height should error")
	}
}

func TestCalculateBMR(t *testing.T) {
	// Mifflin-St Jeor: 10*70 + 6.25*175 - 5*30 + 5 = 1648.75 → 1649
	bmr, err := CalculateBMR(175, 70, 30, "male")
	if err != nil {
		t.Fatalf("CalculateBMR: %v", err)
	}
	if bmr != 1649 {
		t.Errorf("male bmr = %v, want 1649", bmr)
	}

	// female: 10*60 + 6.25*165 - 5*25 - 161 = 1345.25 → 1345
	bmr, err = CalculateBMR(165, 60, 25, "Female")
	if err != nil {
		t.Fatalf("CalculateBMR: %v", err)
	}
	if bmr != 1345 {
		t.Errorf("female bmr = %v, want 1345", bmr)
	}

	if _, err := CalculateBMR(175, 70, 30, "unknown"); err == nil {
		t.Error("unknown sex should error")
	}
}

func TestDailyCalories(t *testing.T) {
	daily, err := DailyCalories(1600, "moderate")
	if err != nil {
		t.Fatalf("DailyCalories: %v", err)
	}
	if daily != 2480 {
		t.Errorf("daily = %v, want 2480", daily)
	}

	if _, err := DailyCalories(1600, "heroic"); err == nil {
		t.Error("unknown activity level should error")
	}
}
