package schema

import "fmt"

// InputError reports an invalid draw request: an empty or malformed
// dataset, or an invalid sampling range. The message is suitable for
// direct display to the user.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// NewInputError builds an InputError from a format string.
func NewInputError(format string, args ...any) error {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

// EvalError reports an expression that failed to parse or that
// produced a non-real value at one or more sample points. The message
// is suitable for direct display to the user.
type EvalError struct {
	Expr string
	Msg  string
}

func (e *EvalError) Error() string {
	if e.Expr == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Expr, e.Msg)
}

// NewEvalError builds an EvalError for the given expression.
func NewEvalError(expr, format string, args ...any) error {
	return &EvalError{Expr: expr, Msg: fmt.Sprintf(format, args...)}
}
