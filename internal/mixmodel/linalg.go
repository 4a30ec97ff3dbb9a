package mixmodel

import "math"

// solveLinearSystem solves A·x = b by Gaussian elimination with
// partial pivoting. Returns ok=false when the system is singular.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, bool) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, false
	}

	// work on copies, callers reuse their matrices
	m := make([][]float64, n)
	for i := range a {
		if len(a[i]) != n {
			return nil, false
		}
		m[i] = append([]float64{}, a[i]...)
		m[i] = append(m[i], b[i])
	}

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(m[pivot][col]) < 1e-12 {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]

		for row := col + 1; row < n; row++ {
			factor := m[row][col] / m[col][col]
			for k := col; k <= n; k++ {
				m[row][k] -= factor * m[col][k]
			}
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := m[row][n]
		for col := row + 1; col < n; col++ {
			sum -= m[row][col] * x[col]
		}
		x[row] = sum / m[row][row]
	}

	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, false
		}
	}
	return x, true
}

// gram computes XᵀX for a row-major matrix.
func gram(x [][]float64) [][]float64 {
	if len(x) == 0 {
		return nil
	}
	p := len(x[0])
	g := make([][]float64, p)
	for i := range g {
		g[i] = make([]float64, p)
	}
	for _, row := range x {
		for i := 0; i < p; i++ {
			for j := i; j < p; j++ {
				g[i][j] += row[i] * row[j]
			}
		}
	}
	for i := 0; i < p; i++ {
		for j := 0; j < i; j++ {
			g[i][j] = g[j][i]
		}
	}
	return g
}

// matTVec computes Xᵀv.
func matTVec(x [][]float64, v []float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	p := len(x[0])
	out := make([]float64, p)
	for i, row := range x {
		for j := 0; j < p; j++ {
			out[j] += row[j] * v[i]
		}
	}
	return out
}

func meanOf(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
