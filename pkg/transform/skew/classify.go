// Package skew implements the skewness-driven transformation planning:
// bucketing numeric columns by skewness, deciding per-column transforms, and
// replaying a recorded plan against another dataset.
package skew

import (
	"math"

	"github.com/cockroachdb/errors"

	fp "github.com/featprep/featprep/pkg/featprep"
	"github.com/featprep/featprep/pkg/stats"
)

// Bucket thresholds on absolute skewness:
//
//	|skew| > 1.0          extremely skewed
//	0.5 <= |skew| <= 1.0  moderately skewed
//	|skew| < 0.5          not skewed
const (
	moderateThreshold = 0.5
	extremeThreshold  = 1.0
)

// Buckets partitions a variable list by skewness. The three lists are
// disjoint, cover the input exactly, and preserve input order.
type Buckets struct {
	NotSkewed []string
	Moderate  []string
	Extreme   []string
}

// Classify buckets the named numeric columns of d by the absolute skewness
// of their non-missing values. Fails on an empty variable list or when a
// name is absent or non-numeric.
func Classify(d *fp.Dataset, vars []string) (Buckets, error) {
	if len(vars) == 0 {
		return Buckets{}, errors.New("skew: empty variable list")
	}
	skews := make(map[string]float64, len(vars))
	for _, v := range vars {
		col, ok := d.ColumnByName(v)
		if !ok {
			return Buckets{}, errors.Newf("skew: unknown column %q", v)
		}
		x, err := stats.Numeric(col)
		if err != nil {
			return Buckets{}, err
		}
		skews[v] = stats.Skewness(x)
	}
	return bucketize(vars, func(v string) float64 { return skews[v] }), nil
}

// bucketize applies the threshold rule to an already-computed skew statistic.
// NaN skew (constant or tiny columns) lands in NotSkewed: there is nothing a
// power transform could fix there.
func bucketize(vars []string, skewOf func(string) float64) Buckets {
	var b Buckets
	for _, v := range vars {
		s := math.Abs(skewOf(v))
		switch {
		case s > extremeThreshold:
			b.Extreme = append(b.Extreme, v)
		case s >= moderateThreshold:
			b.Moderate = append(b.Moderate, v)
		default:
			b.NotSkewed = append(b.NotSkewed, v)
		}
	}
	return b
}
