package errs

import "errors"

// Kind classifies an error by how a caller is expected to react to it.
type Kind int

const (
	// KindUnknown covers every error not produced by this package, typically infrastructure failures.
	KindUnknown Kind = iota
	// KindInvalidArgument means a constructor rejected its input.
	KindInvalidArgument
	// KindBusinessRule means an aggregate refused a mutation in its current state.
	KindBusinessRule
	// KindNotFound means the requested object does not exist.
	KindNotFound
	// KindAlreadyExists means an object with the same key is already present.
	KindAlreadyExists
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindBusinessRule:
		return "BusinessRule"
	case KindNotFound:
		return "NotFound"
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// IsExpected reports whether errors of this kind are routine domain outcomes
// rather than failures of the surrounding infrastructure.
func (k Kind) IsExpected() bool {
	return k != KindUnknown
}

// KindOf walks err (including joined and wrapped errors) and returns its kind.
// Business-rule violations win over argument errors when both are present, since
// the former describe the state the caller must react to.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrBusinessRuleViolation):
		return KindBusinessRule
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidArgument
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrObjectAlreadyExists):
		return KindAlreadyExists
	default:
		return KindUnknown
	}
}
