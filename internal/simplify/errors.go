package simplify

import "errors"

// Kind classifies a failure for the HTTP boundary.
type Kind int

const (
	// KindValidation means the request lacked its required field.
	KindValidation Kind = iota + 1
	// KindUpstream means the generation call failed.
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Messages returned to clients when a required field is missing.
const (
	MsgMissingText  = "Debes enviar un campo 'texto' en el JSON"
	MsgMissingImage = "Debes enviar un campo 'imagen' con la imagen en base64"
	MsgMissingTerm  = "Debes enviar un campo 'termino' en el JSON"
)

// Error is the typed failure returned by every operation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a KindValidation error with a client-facing message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func upstream(err error) *Error {
	return &Error{Kind: KindUpstream, Message: err.Error(), Err: err}
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
