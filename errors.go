package classif

import "errors"

var (
	// ErrEmptyInput is returned when a sample is empty, or becomes empty
	// once no-data sentinels have been removed.
	ErrEmptyInput = errors.New("classif: empty input")

	// ErrNonFinite is returned when a sample contains NaN or an infinity.
	// Such values cannot be ordered or used in variance arithmetic, so
	// they are rejected before any classifier runs.
	ErrNonFinite = errors.New("classif: non-finite value in input")

	// ErrInvalidClassCount is returned when the requested number of
	// classes is smaller than 1 or larger than the number of usable
	// values.
	ErrInvalidClassCount = errors.New("classif: invalid class count")

	// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
	ErrUnknownMethod = errors.New("classif: unknown classification method")
)
