package impute

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	fp "github.com/featprep/featprep/pkg/featprep"
	"github.com/featprep/featprep/pkg/plan"
)

// ApplyPlan replays a missing-value plan: drop directives remove the column
// entirely, fill directives replace every missing entry with the recorded
// value. The dataset is mutated.
type ApplyPlan struct {
	Plan plan.Missing
	Log  zerolog.Logger
}

func (t *ApplyPlan) Name() string { return "fill_missing" }

func (t *ApplyPlan) Apply(ctx context.Context, d *fp.Dataset) (*fp.Dataset, error) {
	vars := make([]string, 0, len(t.Plan))
	for v := range t.Plan {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	for _, v := range vars {
		fill := t.Plan[v]
		if fill.Drop {
			if !d.Drop(v) {
				t.Log.Warn().Str("variable", v).Msg("column to drop already absent")
			}
			continue
		}
		col, ok := d.ColumnByName(v)
		if !ok {
			t.Log.Warn().Str("variable", v).Msg("planned column absent, skipping")
			continue
		}
		switch {
		case fill.Category != nil:
			c, ok := col.(*fp.StringColumn)
			if !ok {
				return nil, errors.Newf("impute: category fill for non-categorical column %q", v)
			}
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					c.Set(i, *fill.Category)
				}
			}
		case fill.Number != nil:
			if err := fillNumber(d, col, *fill.Number); err != nil {
				return nil, err
			}
		default:
			return nil, errors.Newf("impute: empty fill directive for column %q", v)
		}
	}
	return d, nil
}

// fillNumber writes the fill value into missing cells. An int column whose
// fill is fractional (a median between two ints) is promoted to float.
func fillNumber(d *fp.Dataset, col fp.Column, val float64) error {
	switch c := col.(type) {
	case *fp.FloatColumn:
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				c.Set(i, val)
			}
		}
		return nil
	case *fp.IntColumn:
		if val == float64(int64(val)) {
			iv := int64(val)
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					c.Set(i, iv)
				}
			}
			return nil
		}
		replacement := fp.NewFloatColumn(c.Name(), 0)
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Get(i); ok {
				replacement.Append(float64(v))
			} else {
				replacement.Append(val)
			}
		}
		return d.Replace(replacement)
	default:
		return errors.Newf("impute: numeric fill for non-numeric column %q", col.Name())
	}
}
