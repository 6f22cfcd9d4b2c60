package hexmesh

import (
	"fmt"

	"github.com/notargets/hexmesh/quadrature"
)

// Integrator supplies quadrature rules on the unit reference entities.
// The engine only relies on the tensor-product composition law, so rule
// providers with different 1-D point sets can be swapped in.
type Integrator interface {
	Rule(order int, kind EntityKind) (quadrature.Rule, error)
}

// GaussIntegrator is the default rule provider: an order-q Gauss-Legendre
// rule on the unit segment, tensor-multiplied up to the entity dimension.
// It is a stateless value, safe to share.
type GaussIntegrator struct{}

func (GaussIntegrator) Rule(order int, kind EntityKind) (quadrature.Rule, error) {
	if order < 1 {
		return quadrature.Rule{}, &ConfigError{
			Msg: fmt.Sprintf("quadrature order %d, want >= 1", order)}
	}
	line := quadrature.GaussLegendre(order)
	switch kind {
	case Edge:
		return line, nil
	case Face:
		return quadrature.TensorProduct(line, 2), nil
	case Cell:
		return quadrature.TensorProduct(line, 3), nil
	default:
		return quadrature.Rule{}, &ConfigError{
			Msg: "no quadrature rule on nodes"}
	}
}
