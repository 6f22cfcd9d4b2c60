package quadrature

// Rule is a set of reference points and weights on the unit entity
// [0,1]^d. Points[q] holds the d reference coordinates of point q.
type Rule struct {
	Points  [][]float64
	Weights []float64
}

// NumPoints returns the number of quadrature points in the rule.
func (r Rule) NumPoints() int { return len(r.Weights) }

// Dim returns the reference dimension of the rule, 0 for an empty rule.
func (r Rule) Dim() int {
	if len(r.Points) == 0 {
		return 0
	}
	return len(r.Points[0])
}

// TensorProduct composes a 1-D rule into a rule on [0,1]^dim. Point
// ordering is lexicographic with the first coordinate slowest, matching the
// multi-index ordering used by the interpolation point tables.
func TensorProduct(line Rule, dim int) Rule {
	n := line.NumPoints()
	np := 1
	for d := 0; d < dim; d++ {
		np *= n
	}
	pts := make([][]float64, np)
	wts := make([]float64, np)
	for q := 0; q < np; q++ {
		p := make([]float64, dim)
		w := 1.
		rem := q
		for d := dim - 1; d >= 0; d-- {
			i := rem % n
			rem /= n
			p[d] = line.Points[i][0]
			w *= line.Weights[i]
		}
		pts[q] = p
		wts[q] = w
	}
	return Rule{Points: pts, Weights: wts}
}
