package booking

// Kind identifies which validation rule a candidate failed.
type Kind int

const (
	KindEmptyName Kind = iota + 1
	KindMissingDateTime
	KindInvalidRange
	KindConflict
)

// String returns the snake_case name of the kind, used in logs and metadata.
func (k Kind) String() string {
	switch k {
	case KindEmptyName:
		return "empty_name"
	case KindMissingDateTime:
		return "missing_datetime"
	case KindInvalidRange:
		return "invalid_range"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String. It returns false for unknown names.
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{KindEmptyName, KindMissingDateTime, KindInvalidRange, KindConflict} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// ValidationError reports why a candidate was rejected.
// Two ValidationErrors match under errors.Is when their kinds are equal.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any *ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrEmptyName       = &ValidationError{Kind: KindEmptyName, Message: "guest name is required"}
	ErrMissingDateTime = &ValidationError{Kind: KindMissingDateTime, Message: "start and end time are required"}
	ErrInvalidRange    = &ValidationError{Kind: KindInvalidRange, Message: "start must be before end"}
	ErrConflict        = &ValidationError{Kind: KindConflict, Message: "time slot overlaps an existing reservation"}
)
