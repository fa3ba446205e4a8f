package skew

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	fp "github.com/featprep/featprep/pkg/featprep"
	"github.com/featprep/featprep/pkg/plan"
	"github.com/featprep/featprep/pkg/stats"
)

// Planner builds transformation plans from a reference dataset. The zero
// value is usable; Log defaults to a no-op logger and carries the diagnostic
// counts the stages emit.
type Planner struct {
	Log zerolog.Logger
}

func NewPlanner() *Planner { return &Planner{Log: zerolog.Nop()} }

// PlanNumeric decides one transform per candidate numeric column through a
// sequential funnel; each stage only touches what the previous stages left
// undecided, so a decision is never overwritten:
//
//  1. classify; not-skewed columns get Skip
//  2. Yeo-Johnson the moderately skewed, re-classify the transformed values;
//     columns that come back not-skewed get YeoJohnson
//  3. of the columns still skewed after stage 2, log-transform those whose
//     original values have no zeros and no negatives, re-classify; fixed
//     columns get Log
//  4. everything still undecided gets Binarize
//
// Extremely skewed columns from stage 1 never see Yeo-Johnson or the log
// attempt; they fall through to Binarize. Candidates whose stored kind is
// categorical are removed up front and get no decision at all.
func (p *Planner) PlanNumeric(d *fp.Dataset, vars []string) (plan.Numeric, error) {
	numeric, err := p.numericOnly(d, vars)
	if err != nil {
		return nil, err
	}

	res := make(plan.Numeric, len(numeric))

	// stage 1: bucket by skewness of the raw values
	b, err := Classify(d, numeric)
	if err != nil {
		return nil, err
	}
	for _, v := range b.NotSkewed {
		res[v] = plan.Skip
	}
	p.Log.Debug().
		Int("not_skewed", len(b.NotSkewed)).
		Int("moderately_skewed", len(b.Moderate)).
		Int("extremely_skewed", len(b.Extreme)).
		Msg("skewness buckets")

	// stage 2: try Yeo-Johnson on the moderately skewed
	var still []string
	if len(b.Moderate) > 0 {
		transformed := make(map[string]float64, len(b.Moderate))
		for _, v := range b.Moderate {
			x, err := columnValues(d, v)
			if err != nil {
				return nil, err
			}
			y, _ := stats.YeoJohnson(x)
			transformed[v] = stats.Skewness(y)
		}
		b2 := bucketize(b.Moderate, func(v string) float64 { return transformed[v] })
		for _, v := range b2.NotSkewed {
			res[v] = plan.YeoJohnson
		}
		still = append(still, b2.Moderate...)
		still = append(still, b2.Extreme...)
		p.Log.Debug().
			Int("fixed", len(b2.NotSkewed)).
			Int("still_skewed", len(still)).
			Msg("after yeo-johnson")
	}

	// stage 3: try the natural log on survivors whose original values admit it
	var loggable []string
	for _, v := range still {
		x, err := columnValues(d, v)
		if err != nil {
			return nil, err
		}
		if !stats.HasZero(x) && !stats.HasNegative(x) {
			loggable = append(loggable, v)
		}
	}
	if len(loggable) > 0 {
		logged := make(map[string]float64, len(loggable))
		for _, v := range loggable {
			x, err := columnValues(d, v)
			if err != nil {
				return nil, err
			}
			y := make([]float64, len(x))
			for i, val := range x {
				y[i] = math.Log(val)
			}
			logged[v] = stats.Skewness(y)
		}
		b3 := bucketize(loggable, func(v string) float64 { return logged[v] })
		for _, v := range b3.NotSkewed {
			res[v] = plan.Log
		}
		p.Log.Debug().Int("fixed", len(b3.NotSkewed)).Msg("after log")
	}

	// stage 4: binarize whatever is left
	binarized := 0
	for _, v := range numeric {
		if _, ok := res[v]; !ok {
			res[v] = plan.Binarize
			binarized++
		}
	}
	p.Log.Debug().Int("binarized", binarized).Int("total", len(res)).Msg("numeric plan complete")
	return res, nil
}

// PlanTarget is the single-column specialization for the prediction target.
// Unlike PlanNumeric it is one-shot: it picks a transform from the raw
// skewness and the presence of zeros, without verifying the result.
func (p *Planner) PlanTarget(d *fp.Dataset, target string) (*plan.Target, error) {
	col, ok := d.ColumnByName(target)
	if !ok {
		return nil, errors.Newf("skew: target column %q not in dataset", target)
	}
	x, err := stats.Numeric(col)
	if err != nil {
		return nil, err
	}
	s := stats.Skewness(x)
	if math.Abs(s) < moderateThreshold {
		p.Log.Debug().Str("target", target).Float64("skewness", s).Msg("target not skewed")
		return &plan.Target{Variable: target, Decision: plan.Skip}, nil
	}
	// A straight log cannot take zeros; Yeo-Johnson can.
	decision := plan.Log
	if stats.HasZero(x) {
		decision = plan.YeoJohnson
	}
	p.Log.Debug().Str("target", target).Float64("skewness", s).Str("decision", string(decision)).Msg("target plan")
	return &plan.Target{Variable: target, Decision: decision}, nil
}

// numericOnly filters candidates down to columns whose stored kind is
// numeric. Categorical names are dropped silently from the plan's scope,
// matching the planner's contract; unknown names fail.
func (p *Planner) numericOnly(d *fp.Dataset, vars []string) ([]string, error) {
	numeric := make([]string, 0, len(vars))
	for _, v := range vars {
		kind, ok := d.KindOf(v)
		if !ok {
			return nil, errors.Newf("skew: unknown column %q", v)
		}
		if !kind.Numeric() {
			p.Log.Debug().Str("variable", v).Msg("categorical candidate removed from numeric plan")
			continue
		}
		numeric = append(numeric, v)
	}
	return numeric, nil
}

// PlanAndApply builds a numeric plan from d and immediately replays it: the
// train-side convenience. The returned plan is what gets persisted for the
// held-out pass.
func (p *Planner) PlanAndApply(ctx context.Context, d *fp.Dataset, vars []string) (plan.Numeric, *fp.Dataset, error) {
	np, err := p.PlanNumeric(d, vars)
	if err != nil {
		return nil, nil, err
	}
	out, err := (&ApplyNumeric{Plan: np, Log: p.Log}).Apply(ctx, d)
	if err != nil {
		return nil, nil, err
	}
	return np, out, nil
}

func columnValues(d *fp.Dataset, name string) ([]float64, error) {
	col, ok := d.ColumnByName(name)
	if !ok {
		return nil, errors.Newf("skew: unknown column %q", name)
	}
	return stats.Numeric(col)
}
