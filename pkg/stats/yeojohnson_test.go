package stats

import (
	"math"
	"testing"
)

func TestYeoJohnsonValueBranches(t *testing.T) {
	// lambda = 1 is the identity
	for _, v := range []float64{-3, -1, 0, 1, 5} {
		if got := YeoJohnsonValue(v, 1); math.Abs(got-v) > 1e-12 {
			t.Fatalf("lambda=1: f(%v) = %v, want identity", v, got)
		}
	}
	// lambda = 0, non-negative input: log1p
	if got := YeoJohnsonValue(3, 0); math.Abs(got-math.Log1p(3)) > 1e-12 {
		t.Fatalf("lambda=0 branch = %v, want log1p(3)", got)
	}
	// lambda = 2, negative input: -log1p(-x)
	if got := YeoJohnsonValue(-3, 2); math.Abs(got+math.Log1p(3)) > 1e-12 {
		t.Fatalf("lambda=2 branch = %v, want -log1p(3)", got)
	}
	// generic branches
	if got := YeoJohnsonValue(3, 2); math.Abs(got-((math.Pow(4, 2)-1)/2)) > 1e-12 {
		t.Fatalf("positive generic branch = %v", got)
	}
	if got := YeoJohnsonValue(-3, 0.5); math.Abs(got-(-(math.Pow(4, 1.5)-1)/1.5)) > 1e-12 {
		t.Fatalf("negative generic branch = %v", got)
	}
}

func TestYeoJohnsonValueMonotonic(t *testing.T) {
	for _, lambda := range []float64{-2, -0.5, 0, 0.5, 1, 2, 3} {
		prev := math.Inf(-1)
		for v := -5.0; v <= 5.0; v += 0.25 {
			cur := YeoJohnsonValue(v, lambda)
			if cur <= prev {
				t.Fatalf("not increasing at v=%v lambda=%v", v, lambda)
			}
			prev = cur
		}
	}
}

func TestYeoJohnsonReducesSkew(t *testing.T) {
	// x = exp(z)-1 for symmetric z: lambda near 0 recovers z, so the
	// fitted transform should drive skewness close to zero
	z := []float64{-1.2, -0.9, -0.6, -0.3, 0, 0.3, 0.6, 0.9, 1.2}
	x := make([]float64, len(z))
	for i, v := range z {
		x[i] = math.Exp(v) - 1
	}
	before := math.Abs(Skewness(x))
	y, lambda := YeoJohnson(x)
	after := math.Abs(Skewness(y))
	if after >= before {
		t.Fatalf("|skew| went from %v to %v", before, after)
	}
	if after > 0.5 {
		t.Fatalf("fitted transform left |skew| = %v", after)
	}
	if math.Abs(lambda) > 1 {
		t.Fatalf("lambda = %v, expected near 0 for exp-shaped data", lambda)
	}
}

func TestYeoJohnsonHandlesZerosAndNegatives(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2, 10}
	y, _ := YeoJohnson(x)
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("row %d of %v transformed to %v", i, x, v)
		}
	}
}
