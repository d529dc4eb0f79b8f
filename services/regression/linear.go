package regression

import (
	"math"

	"gwas/api/models/association"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Linear fits y by least squares and t-tests the genotype coefficient
func Linear(y []float64, design *association.DesignMatrix, dosages []float64) (float64, bool) {
	x := designWithGenotype(design, dosages)
	n, p := x.Dims()
	df := n - p
	if df <= 0 {
		return 0, false
	}

	var xtx, xtxInv mat.Dense
	xtx.Mul(x.T(), x)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return 0, false
	}

	yVec := mat.NewVecDense(n, y)
	var xty, beta, fitted, residuals mat.VecDense
	xty.MulVec(x.T(), yVec)
	beta.MulVec(&xtxInv, &xty)
	fitted.MulVec(x, &beta)
	residuals.SubVec(yVec, &fitted)

	rss := mat.Dot(&residuals, &residuals)
	sigma2 := rss / float64(df)
	se := math.Sqrt(sigma2 * xtxInv.At(1, 1))
	if se == 0 || math.IsNaN(se) {
		return 0, false
	}

	t := beta.AtVec(1) / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	pValue := 2 * dist.Survival(math.Abs(t))
	return pValue, isUsable(pValue)
}

// designWithGenotype lays out [intercept, genotype, covariates...]
func designWithGenotype(design *association.DesignMatrix, dosages []float64) *mat.Dense {
	n := len(dosages)
	p := 2 + design.Cols()

	x := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		x.Set(i, 1, dosages[i])
	}
	if design != nil {
		for j, column := range design.Columns {
			for i := 0; i < n; i++ {
				x.Set(i, 2+j, column[i])
			}
		}
	}
	return x
}
