package skew

import (
	"context"
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	fp "github.com/featprep/featprep/pkg/featprep"
	"github.com/featprep/featprep/pkg/plan"
	"github.com/featprep/featprep/pkg/stats"
)

// ApplyNumeric replays a previously computed numeric transformation plan.
// It never recomputes decisions: only the recorded directives run. The input
// dataset is not mutated; planned columns are replaced on a copy. An empty
// plan returns the input unchanged.
type ApplyNumeric struct {
	Plan plan.Numeric
	Log  zerolog.Logger
}

func (t *ApplyNumeric) Name() string { return "apply_numeric_plan" }

func (t *ApplyNumeric) Apply(ctx context.Context, d *fp.Dataset) (*fp.Dataset, error) {
	if len(t.Plan) == 0 {
		t.Log.Debug().Msg("empty numeric plan, dataset unchanged")
		return d, nil
	}
	out := d.Clone()

	vars := make([]string, 0, len(t.Plan))
	for v := range t.Plan {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	for _, v := range vars {
		decision := t.Plan[v]
		if decision == plan.Skip {
			continue
		}
		if !decision.Valid() {
			t.Log.Warn().Str("variable", v).Str("decision", string(decision)).Msg("unknown transform decision, skipping")
			continue
		}
		col, ok := out.ColumnByName(v)
		if !ok {
			t.Log.Warn().Str("variable", v).Msg("planned column absent, skipping")
			continue
		}
		cells, nulls, err := numericCells(col)
		if err != nil {
			return nil, err
		}
		present := withoutNulls(cells, nulls)

		switch decision {
		case plan.YeoJohnson:
			lambda := stats.YeoJohnsonLambda(present)
			for i := range cells {
				if !nulls[i] {
					cells[i] = stats.YeoJohnsonValue(cells[i], lambda)
				}
			}
		case plan.Log:
			for i := range cells {
				if !nulls[i] {
					cells[i] = math.Log(cells[i])
				}
			}
		case plan.Binarize:
			// split at the median of the dataset being transformed
			med := stats.Median(present)
			for i := range cells {
				if !nulls[i] {
					if cells[i] <= med {
						cells[i] = 0
					} else {
						cells[i] = 1
					}
				}
			}
		}

		replacement := fp.NewFloatColumn(v, 0)
		for i := range cells {
			if nulls[i] {
				replacement.AppendNull()
			} else {
				replacement.Append(cells[i])
			}
		}
		if err := out.Replace(replacement); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ApplyTarget replays a target transformation plan: the single-column case
// of ApplyNumeric.
func ApplyTarget(tp *plan.Target) *ApplyNumeric {
	return &ApplyNumeric{Plan: plan.Numeric{tp.Variable: tp.Decision}, Log: zerolog.Nop()}
}

// numericCells reads a numeric column as float64 cells plus a null mask,
// keeping row alignment.
func numericCells(col fp.Column) ([]float64, []bool, error) {
	n := col.Len()
	cells := make([]float64, n)
	nulls := make([]bool, n)
	switch c := col.(type) {
	case *fp.FloatColumn:
		for i := 0; i < n; i++ {
			if v, ok := c.Get(i); ok {
				cells[i] = v
			} else {
				nulls[i] = true
			}
		}
	case *fp.IntColumn:
		for i := 0; i < n; i++ {
			if v, ok := c.Get(i); ok {
				cells[i] = float64(v)
			} else {
				nulls[i] = true
			}
		}
	default:
		return nil, nil, errors.Newf("skew: planned column %q is not numeric", col.Name())
	}
	return cells, nulls, nil
}

func withoutNulls(cells []float64, nulls []bool) []float64 {
	out := make([]float64, 0, len(cells))
	for i, v := range cells {
		if !nulls[i] {
			out = append(out, v)
		}
	}
	return out
}
