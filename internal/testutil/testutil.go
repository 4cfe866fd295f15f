// Package testutil provides shared test helpers for numeric assertions.
package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertVecNear fails the test unless got and want have the same length and
// every element differs by at most tol. NaN never matches.
func AssertVecNear(t testing.TB, want, got []float64, tol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
		return
	}
	// max-norm distance; NaN compares false and falls through to the report
	if floats.Distance(want, got, math.Inf(1)) <= tol {
		return
	}
	for i := range want {
		if !scalar.EqualWithinAbs(want[i], got[i], tol) {
			t.Errorf("element %d = %.9g, want %.9g (tol %g)", i, got[i], want[i], tol)
		}
	}
}

// AssertAllNaN fails the test unless every element of got is NaN.
func AssertAllNaN(t testing.TB, got ...float64) {
	t.Helper()
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("element %d = %g, want NaN", i, v)
		}
	}
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
