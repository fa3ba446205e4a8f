// Package stats provides the column-level statistics the planners run on:
// skewness, medians, modes, missingness and the Yeo-Johnson power transform.
package stats

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat"

	fp "github.com/featprep/featprep/pkg/featprep"
)

// Numeric pulls the non-missing values of a numeric column as float64s,
// in row order. Fails for string columns.
func Numeric(col fp.Column) ([]float64, error) {
	switch c := col.(type) {
	case *fp.FloatColumn:
		vals := make([]float64, 0, c.Len())
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Get(i); ok {
				vals = append(vals, v)
			}
		}
		return vals, nil
	case *fp.IntColumn:
		vals := make([]float64, 0, c.Len())
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Get(i); ok {
				vals = append(vals, float64(v))
			}
		}
		return vals, nil
	default:
		return nil, errors.Newf("stats: column %s is not numeric", col.Name())
	}
}

// Strings pulls the non-missing values of a string column, in row order.
func Strings(col fp.Column) ([]string, error) {
	c, ok := col.(*fp.StringColumn)
	if !ok {
		return nil, errors.Newf("stats: column %s is not categorical", col.Name())
	}
	vals := make([]string, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

// Skewness computes the adjusted Fisher-Pearson sample skewness, the same
// statistic pandas' Series.skew reports. NaN when fewer than three values or
// zero variance.
func Skewness(x []float64) float64 {
	return stat.Skew(x, nil)
}

// Median computes the linear-interpolated 0.5 quantile. For an even count
// this is the mean of the two middle values, matching numpy's median.
func Median(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	return stat.Quantile(0.5, stat.LinInterp, s, nil)
}

// Mode returns the most frequent value. Ties break lexicographically so the
// result is deterministic regardless of row order. ok is false for empty input.
func Mode(vals []string) (mode string, ok bool) {
	if len(vals) == 0 {
		return "", false
	}
	counts := make(map[string]int, len(vals))
	for _, v := range vals {
		counts[v]++
	}
	best := -1
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			best = n
			mode = v
		}
	}
	return mode, true
}

// HasZero reports whether x contains an exact zero.
func HasZero(x []float64) bool {
	for _, v := range x {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasNegative reports whether x contains a negative value.
func HasNegative(x []float64) bool {
	for _, v := range x {
		if v < 0 {
			return true
		}
	}
	return false
}

// NullCount counts the missing entries of a column.
func NullCount(col fp.Column) int {
	n := 0
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			n++
		}
	}
	return n
}

// MissingFraction is the fraction of rows with a missing entry; 0 for an
// empty column.
func MissingFraction(col fp.Column) float64 {
	if col.Len() == 0 {
		return 0
	}
	return float64(NullCount(col)) / float64(col.Len())
}
