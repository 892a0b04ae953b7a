package model

import "fmt"

// Kind selects the regressor family to train.
type Kind string

const (
	Linear     Kind = "linear"
	Polynomial Kind = "poly"
	MLP        Kind = "mlp"
)

// AllKinds lists every supported model kind in comparison order.
var AllKinds = []Kind{Linear, Polynomial, MLP}

// ParseKind validates a CLI/config model selector.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Linear, Polynomial, MLP:
		return Kind(s), nil
	}
	return "", &InvalidConfigError{Reason: fmt.Sprintf("unknown model kind %q (want linear, poly or mlp)", s)}
}

func (k Kind) String() string { return string(k) }
