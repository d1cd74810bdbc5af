package smooth

import "github.com/inkwarp/liquify/geom"

// solveTridiagonal solves an n-equation tridiagonal system using the
// Thomas algorithm:
// https://en.wikipedia.org/wiki/Tridiagonal_matrix_algorithm
//
// a is the subdiagonal (a[0] is unused), b the main diagonal, c the
// superdiagonal (c[n-1] is unused), d the right-hand side. a, b, c, d
// must all have length n. The solve overwrites b and d in place and
// returns the solution vector.
func solveTridiagonal(a, b, c []float64, d []geom.Vec2) []geom.Vec2 {
	n := len(b)
	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m * c[i-1]
		d[i] = d[i].Sub(d[i-1].Mul(m))
	}

	x := make([]geom.Vec2, n)
	x[n-1] = d[n-1].Mul(1 / b[n-1])
	for i := n - 2; i >= 0; i-- {
		x[i] = d[i].Sub(x[i+1].Mul(c[i])).Mul(1 / b[i])
	}
	return x
}
