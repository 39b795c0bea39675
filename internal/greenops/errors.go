package greenops

// constError is an immutable sentinel error.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrInvalidUnit is returned for an unrecognised carbon unit.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue is returned for a negative carbon amount.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow is returned for Inf or NaN inputs and results.
	ErrCalculationOverflow = constError("calculation overflow")
)
