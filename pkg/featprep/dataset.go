package featprep

import "github.com/cockroachdb/errors"

// Schema describes the logical shape of a dataset.
type Schema struct {
	Columns []ColumnSchema
}

type ColumnSchema struct {
	Name     string
	Type     Kind
	Nullable bool
}

// Kind enumerates supported logical types.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
)

// Numeric reports whether the kind holds numbers. String columns are
// treated as categorical throughout the library.
func (k Kind) Numeric() bool { return k == KindInt || k == KindFloat }

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Column is a typed, nullable column abstraction. Nulls are the missing-value
// markers: a first-class state distinct from any real value.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	IsNull(i int) bool
	SetNull(i int)
	Clone() Column
}

type IntColumn struct {
	name  string
	data  []int64
	nulls []bool
}

func NewIntColumn(name string, n int) *IntColumn {
	return &IntColumn{name: name, data: make([]int64, n), nulls: make([]bool, n)}
}
func (c *IntColumn) Name() string            { return c.name }
func (c *IntColumn) Kind() Kind              { return KindInt }
func (c *IntColumn) Len() int                { return len(c.data) }
func (c *IntColumn) IsNull(i int) bool       { return c.nulls[i] }
func (c *IntColumn) SetNull(i int)           { c.nulls[i] = true }
func (c *IntColumn) Get(i int) (int64, bool) { return c.data[i], !c.nulls[i] }
func (c *IntColumn) Set(i int, v int64)      { c.data[i] = v; c.nulls[i] = false }
func (c *IntColumn) AppendNull()             { c.data = append(c.data, 0); c.nulls = append(c.nulls, true) }
func (c *IntColumn) Append(v int64)          { c.data = append(c.data, v); c.nulls = append(c.nulls, false) }
func (c *IntColumn) Clone() Column {
	return &IntColumn{name: c.name, data: append([]int64(nil), c.data...), nulls: append([]bool(nil), c.nulls...)}
}

type FloatColumn struct {
	name  string
	data  []float64
	nulls []bool
}

func NewFloatColumn(name string, n int) *FloatColumn {
	return &FloatColumn{name: name, data: make([]float64, n), nulls: make([]bool, n)}
}
func (c *FloatColumn) Name() string              { return c.name }
func (c *FloatColumn) Kind() Kind                { return KindFloat }
func (c *FloatColumn) Len() int                  { return len(c.data) }
func (c *FloatColumn) IsNull(i int) bool         { return c.nulls[i] }
func (c *FloatColumn) SetNull(i int)             { c.nulls[i] = true }
func (c *FloatColumn) Get(i int) (float64, bool) { return c.data[i], !c.nulls[i] }
func (c *FloatColumn) Set(i int, v float64)      { c.data[i] = v; c.nulls[i] = false }
func (c *FloatColumn) AppendNull()               { c.data = append(c.data, 0); c.nulls = append(c.nulls, true) }
func (c *FloatColumn) Append(v float64)          { c.data = append(c.data, v); c.nulls = append(c.nulls, false) }
func (c *FloatColumn) Clone() Column {
	return &FloatColumn{name: c.name, data: append([]float64(nil), c.data...), nulls: append([]bool(nil), c.nulls...)}
}

type StringColumn struct {
	name  string
	data  []string
	nulls []bool
}

func NewStringColumn(name string, n int) *StringColumn {
	return &StringColumn{name: name, data: make([]string, n), nulls: make([]bool, n)}
}
func (c *StringColumn) Name() string             { return c.name }
func (c *StringColumn) Kind() Kind               { return KindString }
func (c *StringColumn) Len() int                 { return len(c.data) }
func (c *StringColumn) IsNull(i int) bool        { return c.nulls[i] }
func (c *StringColumn) SetNull(i int)            { c.nulls[i] = true }
func (c *StringColumn) Get(i int) (string, bool) { return c.data[i], !c.nulls[i] }
func (c *StringColumn) Set(i int, v string)      { c.data[i] = v; c.nulls[i] = false }
func (c *StringColumn) AppendNull()              { c.data = append(c.data, ""); c.nulls = append(c.nulls, true) }
func (c *StringColumn) Append(v string)          { c.data = append(c.data, v); c.nulls = append(c.nulls, false) }
func (c *StringColumn) Clone() Column {
	return &StringColumn{name: c.name, data: append([]string(nil), c.data...), nulls: append([]bool(nil), c.nulls...)}
}

// Dataset is a columnar container for tabular data: an ordered collection of
// named columns sharing a row index.
type Dataset struct {
	cols  []Column
	index map[string]int // name -> col index
	nrows int
}

func New(s Schema) *Dataset {
	d := &Dataset{cols: make([]Column, len(s.Columns)), index: make(map[string]int)}
	for i, cs := range s.Columns {
		switch cs.Type {
		case KindInt:
			d.cols[i] = NewIntColumn(cs.Name, 0)
		case KindFloat:
			d.cols[i] = NewFloatColumn(cs.Name, 0)
		case KindString:
			d.cols[i] = NewStringColumn(cs.Name, 0)
		default:
			panic("invalid column kind")
		}
		d.index[cs.Name] = i
	}
	return d
}

// Schema is derived from the live columns, so it stays accurate after
// Drop and Replace.
func (d *Dataset) Schema() Schema {
	s := Schema{Columns: make([]ColumnSchema, len(d.cols))}
	for i, c := range d.cols {
		s.Columns[i] = ColumnSchema{Name: c.Name(), Type: c.Kind(), Nullable: true}
	}
	return s
}

func (d *Dataset) Rows() int { return d.nrows }
func (d *Dataset) Cols() int { return len(d.cols) }

// Names returns the column names in dataset order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name()
	}
	return names
}

func (d *Dataset) ColumnByName(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.cols[i], true
}

// KindOf reports the stored kind of a named column.
func (d *Dataset) KindOf(name string) (Kind, bool) {
	c, ok := d.ColumnByName(name)
	if !ok {
		return KindInvalid, false
	}
	return c.Kind(), true
}

// Drop removes the named column. Absent names are ignored and reported false.
func (d *Dataset) Drop(name string) bool {
	i, ok := d.index[name]
	if !ok {
		return false
	}
	d.cols = append(d.cols[:i], d.cols[i+1:]...)
	delete(d.index, name)
	for n, j := range d.index {
		if j > i {
			d.index[n] = j - 1
		}
	}
	return true
}

// Replace swaps an existing column for col, matched by name. The replacement
// may change the column kind (encoding a string column yields a float column)
// but must keep the row count.
func (d *Dataset) Replace(col Column) error {
	i, ok := d.index[col.Name()]
	if !ok {
		return errors.Newf("featprep: unknown column: %s", col.Name())
	}
	if col.Len() != d.nrows {
		return errors.Newf("featprep: column %s has %d rows, dataset has %d", col.Name(), col.Len(), d.nrows)
	}
	d.cols[i] = col
	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{cols: make([]Column, len(d.cols)), index: make(map[string]int, len(d.index)), nrows: d.nrows}
	for i, c := range d.cols {
		out.cols[i] = c.Clone()
		out.index[c.Name()] = i
	}
	return out
}

// AppendNullRow appends a row with all-null values.
func (d *Dataset) AppendNullRow() {
	for _, c := range d.cols {
		switch col := c.(type) {
		case *IntColumn:
			col.AppendNull()
		case *FloatColumn:
			col.AppendNull()
		case *StringColumn:
			col.AppendNull()
		default:
			panic("unknown column type")
		}
	}
	d.nrows++
}

// SetCell sets a single cell value by name (row must exist). A nil value
// marks the cell missing.
func (d *Dataset) SetCell(row int, name string, v any) error {
	i, ok := d.index[name]
	if !ok {
		return errors.Newf("featprep: unknown column: %s", name)
	}
	c := d.cols[i]
	switch col := c.(type) {
	case *IntColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		switch t := v.(type) {
		case int:
			col.Set(row, int64(t))
		case int64:
			col.Set(row, t)
		case float64:
			col.Set(row, int64(t))
		default:
			return errors.Newf("featprep: column %s expects int/int64", name)
		}
	case *FloatColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		switch t := v.(type) {
		case float32:
			col.Set(row, float64(t))
		case float64:
			col.Set(row, t)
		case int:
			col.Set(row, float64(t))
		case int64:
			col.Set(row, float64(t))
		default:
			return errors.Newf("featprep: column %s expects float64", name)
		}
	case *StringColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return errors.Newf("featprep: column %s expects string", name)
		}
		col.Set(row, s)
	default:
		return errors.Newf("featprep: unknown column kind")
	}
	return nil
}
