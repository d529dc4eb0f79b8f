package regression

import (
	"math"

	"gwas/api/models/association"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Logistic fits a 0/1 response by iteratively reweighted least
// squares and Wald-tests the genotype coefficient
func Logistic(y []float64, design *association.DesignMatrix, dosages []float64) (float64, bool) {
	x := designWithGenotype(design, dosages)
	n, p := x.Dims()
	if n <= p {
		return 0, false
	}

	beta := mat.NewVecDense(p, nil)
	var cov mat.Dense

	converged := false
	for iter := 0; iter < maxIterations; iter++ {
		var eta mat.VecDense
		eta.MulVec(x, beta)

		// weighted design X'W and working response z
		xtw := mat.NewDense(p, n, nil)
		z := mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			mu := 1 / (1 + math.Exp(-eta.AtVec(i)))
			w := mu * (1 - mu)
			if w < 1e-12 {
				// fitted probabilities of 0 or 1: separation
				return 0, false
			}
			z.SetVec(i, eta.AtVec(i)+(y[i]-mu)/w)
			for j := 0; j < p; j++ {
				xtw.Set(j, i, x.At(i, j)*w)
			}
		}

		var xtwx mat.Dense
		xtwx.Mul(xtw, x)
		if err := cov.Inverse(&xtwx); err != nil {
			return 0, false
		}

		var xtwz, next mat.VecDense
		xtwz.MulVec(xtw, z)
		next.MulVec(&cov, &xtwz)

		delta := 0.0
		for j := 0; j < p; j++ {
			if d := math.Abs(next.AtVec(j) - beta.AtVec(j)); d > delta {
				delta = d
			}
		}
		beta.CopyVec(&next)
		if math.IsNaN(delta) {
			return 0, false
		}
		if delta < tolerance {
			converged = true
			break
		}
	}
	if !converged {
		return 0, false
	}

	se := math.Sqrt(cov.At(1, 1))
	if se == 0 || math.IsNaN(se) {
		return 0, false
	}

	pValue := 2 * distuv.UnitNormal.Survival(math.Abs(beta.AtVec(1)/se))
	return pValue, isUsable(pValue)
}
