package model

import "fmt"

// DataInsufficiencyError is returned when there are too few usable rows
// for the requested operation: fewer rows than cross-validation folds,
// or fewer rows than coefficients to estimate.
type DataInsufficiencyError struct {
	Rows   int
	Needed int
}

func (e *DataInsufficiencyError) Error() string {
	return fmt.Sprintf("insufficient data: have %d rows, need at least %d", e.Rows, e.Needed)
}

// SchemaError is returned when a prediction input does not match the
// feature width the model was trained with.
type SchemaError struct {
	Want int
	Got  int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("feature schema mismatch: model trained with %d features, got %d", e.Want, e.Got)
}

// InvalidConfigError is returned for unusable training configuration:
// unknown model kind, fold count below 2, and similar.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}
