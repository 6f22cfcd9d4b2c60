package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJacobiGQ_Legendre(t *testing.T) {
	// N=1 gives the two-point Gauss-Legendre rule on [-1,1]
	x, w := JacobiGQ(0, 0, 1)
	require.Len(t, x, 2)
	assert.InDelta(t, -1./math.Sqrt(3), x[0], 1e-12)
	assert.InDelta(t, 1./math.Sqrt(3), x[1], 1e-12)
	assert.InDelta(t, 1.0, w[0], 1e-12)
	assert.InDelta(t, 1.0, w[1], 1e-12)
}

func TestGaussLegendre_UnitInterval(t *testing.T) {
	for n := 1; n <= 6; n++ {
		r := GaussLegendre(n)
		require.Equal(t, n, r.NumPoints())

		var sum float64
		for i, w := range r.Weights {
			sum += w
			assert.Greater(t, r.Points[i][0], 0.0)
			assert.Less(t, r.Points[i][0], 1.0)
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "weights must sum to one on [0,1]")
	}
}

func TestGaussLegendre_Exactness(t *testing.T) {
	// An n-point rule integrates monomials up to degree 2n-1 exactly.
	for n := 1; n <= 5; n++ {
		r := GaussLegendre(n)
		for deg := 0; deg <= 2*n-1; deg++ {
			var got float64
			for i, w := range r.Weights {
				got += w * math.Pow(r.Points[i][0], float64(deg))
			}
			want := 1. / float64(deg+1)
			assert.InDeltaf(t, want, got, 1e-12,
				"n=%d deg=%d", n, deg)
		}
	}
}

func TestTensorProduct(t *testing.T) {
	line := GaussLegendre(3)

	for dim := 1; dim <= 3; dim++ {
		r := TensorProduct(line, dim)
		require.Equal(t, dim, r.Dim())
		require.Equal(t, int(math.Pow(3, float64(dim))), r.NumPoints())

		var sum float64
		for _, w := range r.Weights {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	}

	// Separable integrand: int x^2 y^3 over the unit square
	r := TensorProduct(line, 2)
	var got float64
	for q, w := range r.Weights {
		x, y := r.Points[q][0], r.Points[q][1]
		got += w * x * x * y * y * y
	}
	assert.InDelta(t, 1./12., got, 1e-12)
}

func TestTensorProduct_PointOrdering(t *testing.T) {
	// First coordinate varies slowest, matching the multi-index ordering
	// of the interpolation tables.
	line := GaussLegendre(2)
	r := TensorProduct(line, 2)
	assert.Equal(t, r.Points[0][0], r.Points[1][0])
	assert.NotEqual(t, r.Points[0][1], r.Points[1][1])
	assert.NotEqual(t, r.Points[1][0], r.Points[2][0])
}
