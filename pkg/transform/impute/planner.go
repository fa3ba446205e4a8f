// Package impute computes and replays missing-value plans: per-column fill
// directives decided once on a reference dataset.
package impute

import (
	"github.com/rs/zerolog"

	fp "github.com/featprep/featprep/pkg/featprep"
	"github.com/featprep/featprep/pkg/plan"
	"github.com/featprep/featprep/pkg/stats"
)

// Missingness thresholds. Heuristic, inherited from the reference pipeline:
// a categorical column at or above 30% missing gets its own Unknown category;
// a numeric column at or above 50% missing is dropped.
const (
	categoricalThreshold = 0.3
	numericThreshold     = 0.5
)

type Planner struct {
	Log zerolog.Logger
}

func NewPlanner() *Planner { return &Planner{Log: zerolog.Nop()} }

// Plan computes a fill directive for every column with at least one missing
// value. Categorical columns fill with Unknown (heavy missingness) or their
// mode; numeric columns are dropped (heavy missingness) or filled with the
// median of their non-missing values.
//
// When no column has a missing value, Plan returns nil: an explicit
// "no plan" signal, distinct from an empty plan. Callers must branch on it.
func (p *Planner) Plan(d *fp.Dataset) (plan.Missing, error) {
	var flagged []string
	for _, name := range d.Names() {
		col, _ := d.ColumnByName(name)
		if stats.NullCount(col) > 0 {
			flagged = append(flagged, name)
		}
	}
	if len(flagged) == 0 {
		p.Log.Debug().Msg("no missing values")
		return nil, nil
	}

	res := make(plan.Missing, len(flagged))
	catCount, numCount := 0, 0
	for _, name := range flagged {
		col, _ := d.ColumnByName(name)
		frac := stats.MissingFraction(col)

		if col.Kind() == fp.KindString {
			catCount++
			if frac >= categoricalThreshold {
				res[name] = plan.FillCategory(plan.UnknownCategory)
				continue
			}
			vals, err := stats.Strings(col)
			if err != nil {
				return nil, err
			}
			mode, _ := stats.Mode(vals)
			res[name] = plan.FillCategory(mode)
			continue
		}

		numCount++
		if frac >= numericThreshold {
			res[name] = plan.DropColumn()
			continue
		}
		vals, err := stats.Numeric(col)
		if err != nil {
			return nil, err
		}
		res[name] = plan.FillNumber(stats.Median(vals))
	}
	p.Log.Debug().Int("categorical", catCount).Int("numeric", numCount).Msg("columns with missing values")
	return res, nil
}
