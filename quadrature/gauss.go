package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// JacobiGQ computes the N+1 Gauss quadrature points and weights of the
// Jacobi polynomial P_N^{alpha,beta} on [-1,1] via the Golub-Welsch
// algorithm: the points are the eigenvalues of the symmetric tridiagonal
// recurrence matrix, the weights come from the first component of each
// eigenvector.
func JacobiGQ(alpha, beta float64, N int) (x, w []float64) {
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{gamma0(alpha, beta)}
		return
	}

	h1 := make([]float64, N+1)
	for i := 0; i <= N; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// Main diagonal: -1/2*(alpha^2-beta^2)./(h1+2)./h1
	d0 := make([]float64, N+1)
	fac := -.5 * (alpha*alpha - beta*beta)
	for i := 0; i <= N; i++ {
		d0[i] = fac / (h1[i] * (h1[i] + 2.))
	}
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// First superdiagonal
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.) *
			math.Sqrt(ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/((val+1.)*(val+3.)))
	}

	JJ := newSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(nil)

	VVr := mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	w = make([]float64, len(x))
	g0 := gamma0(alpha, beta)
	for i := range w {
		v := VVr.At(0, i)
		w[i] = v * v * g0
	}
	return
}

func newSymTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	S := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		S.SetSym(i, i, d0[i])
		if i < n-1 {
			S.SetSym(i, i+1, d1[i])
		}
	}
	return S
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

// GaussLegendre returns the n-point Gauss-Legendre rule mapped to the unit
// interval [0,1], with weights summing to one. The rule integrates
// polynomials up to degree 2n-1 exactly.
func GaussLegendre(n int) Rule {
	x, w := JacobiGQ(0, 0, n-1)
	pts := make([][]float64, n)
	wts := make([]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = []float64{(x[i] + 1.) / 2.}
		wts[i] = w[i] / 2.
	}
	return Rule{Points: pts, Weights: wts}
}
