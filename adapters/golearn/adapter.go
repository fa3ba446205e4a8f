// Package golearn converts between featprep's Dataset and
// github.com/sjwhitworth/golearn/base DenseInstances, the hand-off point to
// downstream modeling once preprocessing plans have been applied.
package golearn

import (
	"github.com/sjwhitworth/golearn/base"

	fp "github.com/featprep/featprep/pkg/featprep"
)

// ToDenseInstances converts a Dataset into golearn DenseInstances. Numeric
// columns map to float attributes, categorical columns to categorical
// attributes.
func ToDenseInstances(d *fp.Dataset) (*base.DenseInstances, error) {
	schema := d.Schema()
	attrs := make([]base.Attribute, len(schema.Columns))
	for i, cs := range schema.Columns {
		if cs.Type.Numeric() {
			attrs[i] = base.NewFloatAttribute(cs.Name)
		} else {
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(d.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < d.Rows(); r++ {
		for i, cs := range schema.Columns {
			col, _ := d.ColumnByName(cs.Name)
			switch c := col.(type) {
			case *fp.FloatColumn:
				if v, ok := c.Get(r); ok {
					inst.Set(specs[i], r, base.PackFloatToBytes(v))
				}
			case *fp.IntColumn:
				if v, ok := c.Get(r); ok {
					inst.Set(specs[i], r, base.PackFloatToBytes(float64(v)))
				}
			case *fp.StringColumn:
				if v, ok := c.Get(r); ok {
					inst.Set(specs[i], r, base.Attribute.GetSysValFromString(attrs[i], v))
				}
			}
		}
	}
	// Heuristic: last column as class if present
	if len(attrs) > 0 {
		if err := inst.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// FromDenseInstances converts golearn DenseInstances into a Dataset. Float
// attributes become float columns, everything else becomes categorical.
func FromDenseInstances(inst *base.DenseInstances) (*fp.Dataset, error) {
	attrs := inst.AllAttributes()
	schema := fp.Schema{Columns: make([]fp.ColumnSchema, len(attrs))}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		k := fp.KindString
		if a.GetType() == 1 { // float in golearn
			k = fp.KindFloat
		}
		schema.Columns[i] = fp.ColumnSchema{Name: a.GetName(), Type: k, Nullable: true}
		spec, _ := inst.GetAttribute(a)
		specs[i] = spec
	}
	d := fp.New(schema)
	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		d.AppendNullRow()
		for i, cs := range schema.Columns {
			switch cs.Type {
			case fp.KindFloat:
				v := base.UnpackBytesToFloat(inst.Get(specs[i], r))
				_ = d.SetCell(r, cs.Name, v)
			default:
				v := base.Attribute.GetStringFromSysVal(specs[i].GetAttribute(), inst.Get(specs[i], r))
				_ = d.SetCell(r, cs.Name, v)
			}
		}
	}
	return d, nil
}
