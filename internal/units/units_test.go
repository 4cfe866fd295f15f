package units

import (
	"math"
	"testing"
)

func TestConvertSpeed(t *testing.T) {
	tests := []struct {
		name     string
		speedMPS float64
		units    string
		expected float64
	}{
		{"10 m/s to mph", 10.0, MPH, 22.3694},
		{"10 m/s to kmph", 10.0, KMPH, 36.0},
		{"10 m/s to kph", 10.0, KPH, 36.0},
		{"10 m/s to mps", 10.0, MPS, 10.0},
		{"unknown units default to mps", 10.0, "unknown", 10.0},
		{"0 m/s to mph", 0.0, MPH, 0.0},
		{"reverse 1 m/s to kph", -1.0, KPH, -3.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertSpeed(tt.speedMPS, tt.units)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("ConvertSpeed(%f, %s) = %f, want %f", tt.speedMPS, tt.units, result, tt.expected)
			}
		})
	}
}

func TestSpeedToMPS(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		unit     string
		expected float64
		wantErr  bool
	}{
		{"mps passthrough", 1.5, MPS, 1.5, false},
		{"36 kmph", 36, KMPH, 10, false},
		{"36 kph", 36, KPH, 10, false},
		{"mph", 22.369362920544, MPH, 10, false},
		{"unknown unit", 1, "knots", 0, true},
		{"case sensitive", 1, "MPS", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SpeedToMPS(tt.speed, tt.unit)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SpeedToMPS(%f, %q) expected error", tt.speed, tt.unit)
				}
				return
			}
			if err != nil {
				t.Fatalf("SpeedToMPS(%f, %q) unexpected error: %v", tt.speed, tt.unit, err)
			}
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("SpeedToMPS(%f, %q) = %f, want %f", tt.speed, tt.unit, result, tt.expected)
			}
		})
	}
}

func TestSpeedRoundTrip(t *testing.T) {
	for _, unit := range ValidSpeedUnits {
		mps, err := SpeedToMPS(ConvertSpeed(7.25, unit), unit)
		if err != nil {
			t.Fatalf("unit %s: %v", unit, err)
		}
		if math.Abs(mps-7.25) > 1e-12 {
			t.Errorf("unit %s: round trip = %f, want 7.25", unit, mps)
		}
	}
}

func TestIsValidSpeedUnit(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected bool
	}{
		{"valid mps", MPS, true},
		{"valid mph", MPH, true},
		{"valid kmph", KMPH, true},
		{"valid kph", KPH, true},
		{"invalid unit", "invalid", false},
		{"empty string", "", false},
		{"case sensitive", "MPH", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSpeedUnit(tt.unit); got != tt.expected {
				t.Errorf("IsValidSpeedUnit(%q) = %v, want %v", tt.unit, got, tt.expected)
			}
		})
	}
}

func TestGetValidSpeedUnitsString(t *testing.T) {
	if got, want := GetValidSpeedUnitsString(), "mps, mph, kmph, kph"; got != want {
		t.Errorf("GetValidSpeedUnitsString() = %s, want %s", got, want)
	}
}
