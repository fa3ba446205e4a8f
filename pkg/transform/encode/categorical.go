// Package encode replays category-to-code mappings onto categorical columns.
package encode

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	fp "github.com/featprep/featprep/pkg/featprep"
	"github.com/featprep/featprep/pkg/plan"
)

// Categorical substitutes each mapped variable's values with their numeric
// codes. A variable whose current values already overlap the code set is
// treated as encoded and skipped rather than re-encoded.
// Values absent from the mapping become missing, the contract of key-based
// substitution. The dataset is mutated: encoded string columns come back as
// float columns. An empty mapping is a no-op.
type Categorical struct {
	Mapping plan.Encoding
	Log     zerolog.Logger
}

func (t *Categorical) Name() string { return "encode_categorical" }

func (t *Categorical) Apply(ctx context.Context, d *fp.Dataset) (*fp.Dataset, error) {
	if len(t.Mapping) == 0 {
		t.Log.Debug().Msg("empty encoding map, dataset unchanged")
		return d, nil
	}

	vars := make([]string, 0, len(t.Mapping))
	for v := range t.Mapping {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	for _, v := range vars {
		codes := t.Mapping[v]
		col, ok := d.ColumnByName(v)
		if !ok {
			t.Log.Warn().Str("variable", v).Msg("mapped column absent, skipping")
			continue
		}

		codeSet := make(map[float64]struct{}, len(codes))
		for _, c := range codes {
			codeSet[c] = struct{}{}
		}

		switch c := col.(type) {
		case *fp.StringColumn:
			// string values cannot collide with numeric codes; always disjoint
			replacement := fp.NewFloatColumn(v, 0)
			unmapped := 0
			for i := 0; i < c.Len(); i++ {
				val, present := c.Get(i)
				if !present {
					replacement.AppendNull()
					continue
				}
				code, known := codes[val]
				if !known {
					replacement.AppendNull()
					unmapped++
					continue
				}
				replacement.Append(code)
			}
			if err := d.Replace(replacement); err != nil {
				return nil, err
			}
			if unmapped > 0 {
				t.Log.Warn().Str("variable", v).Int("unmapped", unmapped).Msg("values outside mapping became missing")
			}
		case *fp.FloatColumn:
			if overlapsFloat(c, codeSet) {
				t.Log.Info().Str("variable", v).Msg("already encoded, skipping")
				continue
			}
			// numeric and disjoint from the code range: no key can match,
			// so every value is unmapped
			for i := 0; i < c.Len(); i++ {
				c.SetNull(i)
			}
			t.Log.Warn().Str("variable", v).Msg("numeric column disjoint from mapping, all values became missing")
		case *fp.IntColumn:
			if overlapsInt(c, codeSet) {
				t.Log.Info().Str("variable", v).Msg("already encoded, skipping")
				continue
			}
			for i := 0; i < c.Len(); i++ {
				c.SetNull(i)
			}
			t.Log.Warn().Str("variable", v).Msg("numeric column disjoint from mapping, all values became missing")
		}
	}
	return d, nil
}

func overlapsFloat(c *fp.FloatColumn, codes map[float64]struct{}) bool {
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			if _, hit := codes[v]; hit {
				return true
			}
		}
	}
	return false
}

func overlapsInt(c *fp.IntColumn, codes map[float64]struct{}) bool {
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			if _, hit := codes[float64(v)]; hit {
				return true
			}
		}
	}
	return false
}
