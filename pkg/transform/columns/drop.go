// Package columns holds column-level structural transforms.
package columns

import (
	"context"

	fp "github.com/featprep/featprep/pkg/featprep"
)

// Drop removes the named columns (unrelated or leaky variables) when
// present. Absent names are silently ignored. The dataset is mutated.
type Drop struct {
	Columns []string
}

func (t *Drop) Name() string { return "drop_columns" }

func (t *Drop) Apply(ctx context.Context, d *fp.Dataset) (*fp.Dataset, error) {
	for _, c := range t.Columns {
		d.Drop(c)
	}
	return d, nil
}
