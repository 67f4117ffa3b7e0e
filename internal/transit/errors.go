package transit

import "fmt"

// DomainError reports an input that left a calculator's mathematical domain:
// which stage refused, which quantity was out of range, and why. Calculators
// return it instead of letting NaN or Inf flow downstream.
type DomainError struct {
	Stage    string
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", e.Stage, e.Quantity, e.Value, e.Reason)
}

func domainErr(stage, quantity string, value float64, reason string) error {
	return &DomainError{Stage: stage, Quantity: quantity, Value: value, Reason: reason}
}
