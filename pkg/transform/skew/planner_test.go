package skew

import (
	"context"
	"math"
	"testing"

	fp "github.com/featprep/featprep/pkg/featprep"
	"github.com/featprep/featprep/pkg/plan"
)

func plannerDataset() *fp.Dataset {
	s := fp.Schema{Columns: []fp.ColumnSchema{
		{Name: "flat", Type: fp.KindFloat, Nullable: true},
		{Name: "mild", Type: fp.KindFloat, Nullable: true},
		{Name: "spiky", Type: fp.KindFloat, Nullable: true},
		{Name: "label", Type: fp.KindString, Nullable: true},
	}}
	d := fp.New(s)
	flat := []float64{1, 2, 3, 4, 5}
	// exp(z)-1 for symmetric z: moderately skewed, and Yeo-Johnson with a
	// near-zero exponent recovers z, fixing the skew
	mild := []float64{-0.550671, -0.329680, 0, 0.491825, 1.225541}
	spiky := []float64{0, 0, 0, 0, 50}
	label := []string{"a", "b", "a", "b", "a"}
	for i := 0; i < 5; i++ {
		d.AppendNullRow()
		_ = d.SetCell(i, "flat", flat[i])
		_ = d.SetCell(i, "mild", mild[i])
		_ = d.SetCell(i, "spiky", spiky[i])
		_ = d.SetCell(i, "label", label[i])
	}
	return d
}

func TestPlanNumeric(t *testing.T) {
	d := plannerDataset()
	p := NewPlanner()
	np, err := p.PlanNumeric(d, []string{"flat", "mild", "spiky", "label"})
	if err != nil {
		t.Fatal(err)
	}
	// the categorical candidate is removed, not decided
	if _, ok := np["label"]; ok {
		t.Fatal("categorical candidate received a decision")
	}
	if len(np) != 3 {
		t.Fatalf("plan covers %d variables, want 3", len(np))
	}
	// every covered variable has exactly one valid decision
	for v, dec := range np {
		if !dec.Valid() {
			t.Fatalf("variable %s has invalid decision %q", v, dec)
		}
	}
	if np["flat"] != plan.Skip {
		t.Fatalf("flat = %s, want Skip", np["flat"])
	}
	if np["mild"] != plan.YeoJohnson {
		t.Fatalf("mild = %s, want YeoJohnson", np["mild"])
	}
	// extremely skewed at stage 1: never offered Yeo-Johnson or Log,
	// falls through to the terminal Binarize
	if np["spiky"] != plan.Binarize {
		t.Fatalf("spiky = %s, want Binarize", np["spiky"])
	}
}

func TestPlanNumericNeverLogsZeros(t *testing.T) {
	// every variable with a zero or negative original value must end up
	// with a decision other than Log
	d := plannerDataset()
	np, err := NewPlanner().PlanNumeric(d, []string{"mild", "spiky"})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{"mild", "spiky"} {
		if np[v] == plan.Log {
			t.Fatalf("%s contains zeros/negatives but was assigned Log", v)
		}
	}
}

func TestPlanNumericEmptyAfterFilterFails(t *testing.T) {
	d := plannerDataset()
	if _, err := NewPlanner().PlanNumeric(d, []string{"label"}); err == nil {
		t.Fatal("expected error when no numeric candidates remain")
	}
}

func TestPlanNumericUnknownColumnFails(t *testing.T) {
	d := plannerDataset()
	if _, err := NewPlanner().PlanNumeric(d, []string{"flat", "ghost"}); err == nil {
		t.Fatal("expected error for unknown candidate")
	}
}

func TestPlanTarget(t *testing.T) {
	s := fp.Schema{Columns: []fp.ColumnSchema{
		{Name: "even", Type: fp.KindFloat, Nullable: true},
		{Name: "withzero", Type: fp.KindFloat, Nullable: true},
		{Name: "nozero", Type: fp.KindFloat, Nullable: true},
	}}
	d := fp.New(s)
	even := []float64{1, 2, 3, 4, 5}
	withzero := []float64{0, 0, 0, 0, 50}
	nozero := []float64{1, 1, 1, 1, 10}
	for i := 0; i < 5; i++ {
		d.AppendNullRow()
		_ = d.SetCell(i, "even", even[i])
		_ = d.SetCell(i, "withzero", withzero[i])
		_ = d.SetCell(i, "nozero", nozero[i])
	}
	p := NewPlanner()

	tp, err := p.PlanTarget(d, "even")
	if err != nil {
		t.Fatal(err)
	}
	if tp.Decision != plan.Skip {
		t.Fatalf("symmetric target = %s, want Skip", tp.Decision)
	}

	tp, err = p.PlanTarget(d, "withzero")
	if err != nil {
		t.Fatal(err)
	}
	if tp.Decision != plan.YeoJohnson {
		t.Fatalf("zero-bearing target = %s, want YeoJohnson", tp.Decision)
	}

	tp, err = p.PlanTarget(d, "nozero")
	if err != nil {
		t.Fatal(err)
	}
	if tp.Decision != plan.Log {
		t.Fatalf("zero-free target = %s, want Log", tp.Decision)
	}

	if _, err := p.PlanTarget(d, "ghost"); err == nil {
		t.Fatal("expected error for missing target")
	}
}

func TestPlanAndApply(t *testing.T) {
	ctx := context.Background()
	d := plannerDataset()
	np, out, err := NewPlanner().PlanAndApply(ctx, d, []string{"flat", "spiky"})
	if err != nil {
		t.Fatal(err)
	}
	if np["spiky"] != plan.Binarize {
		t.Fatalf("spiky = %s, want Binarize", np["spiky"])
	}
	col, _ := out.ColumnByName("spiky")
	want := []float64{0, 0, 0, 0, 1}
	for i, w := range want {
		v, _ := col.(*fp.FloatColumn).Get(i)
		if math.Abs(v-w) > 1e-12 {
			t.Fatalf("spiky row %d = %v, want %v", i, v, w)
		}
	}
	// the input dataset is untouched
	orig, _ := d.ColumnByName("spiky")
	if v, _ := orig.(*fp.FloatColumn).Get(4); v != 50 {
		t.Fatalf("input mutated: %v", v)
	}
}
