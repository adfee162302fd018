package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors, raised while a sequence chain is being built.
const (
	// ErrCodeInvalidArgument indicates an argument outside its accepted range, such as a negative count.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeMissingArgument indicates a required argument was nil.
	ErrCodeMissingArgument ErrorCode = "MISSING_ARGUMENT"
)

// Evaluation errors, raised while a sequence is being iterated.
const (
	// ErrCodeEmptySequence indicates a terminal operation that needs at least one element found none.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeExhausted indicates Next was called on an iterator with no remaining elements.
	ErrCodeExhausted ErrorCode = "EXHAUSTED"
	// ErrCodeAlreadyConsumed indicates a single-use sequence was asked for a second iterator.
	ErrCodeAlreadyConsumed ErrorCode = "ALREADY_CONSUMED"
)

// Configuration errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var contractCodes = map[ErrorCode]bool{
	ErrCodeInvalidArgument: true,
	ErrCodeMissingArgument: true,
	ErrCodeExhausted:       true,
	ErrCodeAlreadyConsumed: true,
}

// IsContractViolation reports whether the code describes caller misuse of the API
// rather than absent data or bad input.
func IsContractViolation(code ErrorCode) bool {
	return contractCodes[code]
}
