package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Lambda search interval. The optimum for real-world feature columns sits
// well inside it; scipy brackets its solver at (-2, 2).
const (
	lambdaLo = -5.0
	lambdaHi = 5.0
)

// YeoJohnson fits a power-transform exponent to x by maximizing the
// Yeo-Johnson log-likelihood, then transforms x with it. The transform is
// defined for all real inputs, including zero and negative values.
func YeoJohnson(x []float64) ([]float64, float64) {
	lambda := YeoJohnsonLambda(x)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = YeoJohnsonValue(v, lambda)
	}
	return out, lambda
}

// YeoJohnsonValue applies the Yeo-Johnson transform with a fixed exponent.
func YeoJohnsonValue(v, lambda float64) float64 {
	const eps = 1e-10
	if v >= 0 {
		if math.Abs(lambda) < eps {
			return math.Log1p(v)
		}
		return (math.Pow(v+1, lambda) - 1) / lambda
	}
	if math.Abs(lambda-2) < eps {
		return -math.Log1p(-v)
	}
	return -(math.Pow(-v+1, 2-lambda) - 1) / (2 - lambda)
}

// YeoJohnsonLambda picks the exponent maximizing the log-likelihood via a
// golden-section search over [lambdaLo, lambdaHi]. The likelihood is
// unimodal in lambda for fixed data, so the bracketing search converges.
func YeoJohnsonLambda(x []float64) float64 {
	const (
		invPhi = 0.6180339887498949
		tol    = 1e-8
	)
	lo, hi := lambdaLo, lambdaHi
	a := hi - invPhi*(hi-lo)
	b := lo + invPhi*(hi-lo)
	fa := yeoJohnsonLogLik(x, a)
	fb := yeoJohnsonLogLik(x, b)
	for hi-lo > tol {
		if fa > fb {
			hi = b
			b, fb = a, fa
			a = hi - invPhi*(hi-lo)
			fa = yeoJohnsonLogLik(x, a)
		} else {
			lo = a
			a, fa = b, fb
			b = lo + invPhi*(hi-lo)
			fb = yeoJohnsonLogLik(x, b)
		}
	}
	return (lo + hi) / 2
}

func yeoJohnsonLogLik(x []float64, lambda float64) float64 {
	n := len(x)
	if n == 0 {
		return math.Inf(-1)
	}
	y := make([]float64, n)
	logTerm := 0.0
	for i, v := range x {
		y[i] = YeoJohnsonValue(v, lambda)
		logTerm += sign(v) * math.Log1p(math.Abs(v))
	}
	variance := stat.PopVariance(y, nil)
	if variance <= 0 || math.IsNaN(variance) || math.IsInf(variance, 0) {
		return math.Inf(-1)
	}
	return -float64(n)/2*math.Log(variance) + (lambda-1)*logTerm
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
