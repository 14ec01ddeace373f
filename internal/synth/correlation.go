package synth

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CorrelationVariables names the clinical variables covered by the sample
// correlation matrix, in display order.
var CorrelationVariables = []string{
	"Heart Rate", "Blood Pressure", "SpO2", "Temperature",
	"Respiratory Rate", "GCS Score", "SOFA Score", "WBC Count",
}

// CorrelationMatrix draws a random symmetric matrix over the clinical
// variables. Off-diagonal entries are scale-normalized into [-1, 1] by the
// largest absolute off-diagonal value; the diagonal is fixed at exactly 1
// afterwards so it survives the normalization.
func (s *Synthesizer) CorrelationMatrix() [][]float64 {
	n := len(CorrelationVariables)

	raw := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			raw.Set(i, j, s.rng.NormFloat64())
		}
	}

	sym := mat.NewDense(n, n, nil)
	sym.Add(raw, raw.T())
	sym.Scale(0.5, sym)

	maxAbs := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if a := math.Abs(sym.At(i, j)); a > maxAbs {
				maxAbs = a
			}
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	matrix := make([][]float64, n)
	for i := 0; i < n; i++ {
		matrix[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				matrix[i][j] = 1
			} else {
				matrix[i][j] = sym.At(i, j) / maxAbs
			}
		}
	}

	return matrix
}
