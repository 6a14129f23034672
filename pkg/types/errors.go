package types

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than
// message text.
type ErrKind int

const (
	ErrKindExtendedSearchUnavailable ErrKind = iota
	ErrKindLogicalSearchUnavailable
	ErrKindIncorrectIndexType
	ErrKindInvalidLogicalQueryForKey
	ErrKindPatternLengthTooLarge
	ErrKindMissingKeyProperty
	ErrKindInvalidKeyWeightValue
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindExtendedSearchUnavailable:
		return "ExtendedSearchUnavailable"
	case ErrKindLogicalSearchUnavailable:
		return "LogicalSearchUnavailable"
	case ErrKindIncorrectIndexType:
		return "IncorrectIndexType"
	case ErrKindInvalidLogicalQueryForKey:
		return "InvalidLogicalQueryForKey"
	case ErrKindPatternLengthTooLarge:
		return "PatternLengthTooLarge"
	case ErrKindMissingKeyProperty:
		return "MissingKeyProperty"
	case ErrKindInvalidKeyWeightValue:
		return "InvalidKeyWeightValue"
	default:
		return "Unknown"
	}
}

// Error is the single discriminated error type fuzzdex surfaces. Errors
// signal misconfiguration or contract violations; a pattern that simply
// fails to match is never an error (see Match/FuseResult).
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NewExtendedSearchUnavailable reports that an extended-search query was
// requested but the feature flag was not enabled.
func NewExtendedSearchUnavailable() *Error {
	return &Error{Kind: ErrKindExtendedSearchUnavailable, Msg: "extended search is not available"}
}

// NewLogicalSearchUnavailable reports that a logical (boolean-tree) query
// was requested against a searcher that can't execute one.
func NewLogicalSearchUnavailable() *Error {
	return &Error{Kind: ErrKindLogicalSearchUnavailable, Msg: "logical search is not available"}
}

// NewIncorrectIndexType reports that a record was a JSON scalar where an
// object/array was required, or vice versa.
func NewIncorrectIndexType() *Error {
	return &Error{Kind: ErrKindIncorrectIndexType, Msg: "incorrect index type for record"}
}

// NewInvalidLogicalQueryForKey reports a malformed leaf in a logical query
// tree (missing string value, bad $path, etc.) for the named key.
func NewInvalidLogicalQueryForKey(keyID string) *Error {
	return &Error{
		Kind: ErrKindInvalidLogicalQueryForKey,
		Msg:  fmt.Sprintf("invalid logical query for key %q", keyID),
	}
}

// NewPatternLengthTooLarge reports a bitap pattern chunk longer than the
// machine word width max (see internal/bitap.MaxBits).
func NewPatternLengthTooLarge(max int) *Error {
	return &Error{
		Kind: ErrKindPatternLengthTooLarge,
		Msg:  fmt.Sprintf("pattern length exceeds maximum of %d bits", max),
	}
}

// NewMissingKeyProperty reports a key spec object missing a required
// property (e.g. "name").
func NewMissingKeyProperty(name string) *Error {
	return &Error{
		Kind: ErrKindMissingKeyProperty,
		Msg:  fmt.Sprintf("missing key property %q", name),
	}
}

// NewInvalidKeyWeightValue reports a key weight <= 0.
func NewInvalidKeyWeightValue(keyID string) *Error {
	return &Error{
		Kind: ErrKindInvalidKeyWeightValue,
		Msg:  fmt.Sprintf("invalid weight for key %q: weight must be > 0", keyID),
	}
}
