package numutil

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{math.NaN(), 2, 8, 2},
		{math.Inf(1), 2, 8, 2},
		{math.Inf(-1), 2, 8, 2},
	}
	for _, c := range cases {
		got := Clamp(c.v, c.min, c.max)
		if got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.min, c.max, got, c.want)
		}
	}
}

func TestClampIdempotent(t *testing.T) {
	vals := []float64{-100, -1, 0, 0.5, 1, 7.3, 99, math.NaN(), math.Inf(1)}
	for _, v := range vals {
		once := Clamp(v, -1, 1)
		twice := Clamp(once, -1, 1)
		if once != twice {
			t.Errorf("Clamp not idempotent for %v: %v != %v", v, once, twice)
		}
	}
}

func TestClampIntRoundsBeforeClamping(t *testing.T) {
	if got := ClampInt(7.9, 1, 30); got != 8 {
		t.Errorf("ClampInt(7.9) = %d, want 8", got)
	}
	if got := ClampInt(30.4, 1, 30); got != 30 {
		t.Errorf("ClampInt(30.4) = %d, want 30", got)
	}
	if got := ClampInt(0.2, 1, 30); got != 1 {
		t.Errorf("ClampInt(0.2) = %d, want 1", got)
	}
	if got := ClampInt(math.NaN(), 1, 30); got != 1 {
		t.Errorf("ClampInt(NaN) = %d, want 1", got)
	}
}

func TestParseClamp(t *testing.T) {
	if got := ParseClampInt("7.9", 1, 30); got != 8 {
		t.Errorf(`ParseClampInt("7.9") = %d, want 8`, got)
	}
	if got := ParseClampInt("abc", 1, 30); got != 1 {
		t.Errorf(`ParseClampInt("abc") = %d, want 1`, got)
	}
	if got := ParseClamp("4.25", 0, 3); got != 3 {
		t.Errorf(`ParseClamp("4.25", 0, 3) = %v, want 3`, got)
	}
	if got := ParseClamp("", 2, 3); got != 2 {
		t.Errorf(`ParseClamp("") = %v, want 2`, got)
	}
}

func TestFormatFloat(t *testing.T) {
	if got := FormatFloat(4.2, 2); got != "4.20" {
		t.Errorf("FormatFloat(4.2, 2) = %q", got)
	}
	if got := FormatFloat(math.NaN(), 2); got != "" {
		t.Errorf("FormatFloat(NaN) = %q, want empty", got)
	}
	if got := FormatFloat(math.Inf(-1), 1); got != "" {
		t.Errorf("FormatFloat(-Inf) = %q, want empty", got)
	}
}
