// Package regression holds the per-variant association engine.
//
// The association pipeline only depends on the Engine interface; the
// bundled implementation fits, for every variant,
//
//	y ~ intercept + genotype + covariates...
//
// by ordinary least squares when the response is quantitative, or by
// logistic regression (IRLS) when every response value is 0 or 1, and
// reports the p-value of the genotype coefficient.
package regression

import (
	"math"

	"gwas/api/models/association"
)

// Engine reports the p-value of the genotype term for one variant.
// ok is false when no fit is possible: too few samples, a constant
// genotype, a singular design or a fit that does not converge.
type Engine interface {
	Fit(y []float64, design *association.DesignMatrix, dosages []float64) (pValue float64, ok bool)
}

const (
	maxIterations = 25
	tolerance     = 1e-8
)

type Auto struct{}

func New() *Auto {
	return &Auto{}
}

func (a *Auto) Fit(y []float64, design *association.DesignMatrix, dosages []float64) (float64, bool) {
	if len(y) == 0 || len(dosages) != len(y) || isConstant(dosages) {
		return 0, false
	}
	if isBinary(y) {
		return Logistic(y, design, dosages)
	}
	return Linear(y, design, dosages)
}

// -- helpers
func isConstant(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
		if v != values[0] {
			return false
		}
	}
	return true
}

func isBinary(values []float64) bool {
	for _, v := range values {
		if v != 0 && v != 1 {
			return false
		}
	}
	return true
}

func isUsable(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0 && p <= 1
}
