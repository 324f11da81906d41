package license

import (
	"errors"
	"fmt"
)

// ErrorKind classifies license expression parse failures.
type ErrorKind string

const (
	// ErrInvalidToken indicates a token that is not valid where it
	// appeared: a malformed identifier, an operator in atom position,
	// a lowercase keyword, or input that ended before an atom.
	ErrInvalidToken ErrorKind = "invalid token"

	// ErrUnbalancedParens indicates a group that was opened but never
	// closed, or a closing parenthesis with no matching open.
	ErrUnbalancedParens ErrorKind = "unbalanced parentheses"

	// ErrNotSimpleExpression indicates a compound expression (AND/OR)
	// in a position that only permits a single license with an
	// optional exception.
	ErrNotSimpleExpression ErrorKind = "not a simple expression"
)

// ParseError reports a failure to parse a license expression.
type ParseError struct {
	// Expression is the input text that failed to parse.
	Expression string

	// Token is the offending substring. Empty when the input ended
	// before the expression was complete.
	Token string

	// Kind classifies the failure.
	Kind ErrorKind
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrInvalidToken:
		if e.Token == "" {
			return fmt.Sprintf("parse license expression %q: unexpected end of expression", e.Expression)
		}
		return fmt.Sprintf("parse license expression %q: invalid token %q", e.Expression, e.Token)
	case ErrUnbalancedParens:
		return fmt.Sprintf("parse license expression %q: unbalanced parentheses", e.Expression)
	case ErrNotSimpleExpression:
		return fmt.Sprintf("parse license expression %q: compound expression where a single license is required", e.Expression)
	default:
		return fmt.Sprintf("parse license expression %q: %s", e.Expression, e.Kind)
	}
}

// IsInvalidToken returns true if the error is a ParseError with kind
// ErrInvalidToken.
func IsInvalidToken(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr) && parseErr.Kind == ErrInvalidToken
}

// IsUnbalancedParens returns true if the error is a ParseError with kind
// ErrUnbalancedParens.
func IsUnbalancedParens(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr) && parseErr.Kind == ErrUnbalancedParens
}

// IsNotSimpleExpression returns true if the error is a ParseError with
// kind ErrNotSimpleExpression.
func IsNotSimpleExpression(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr) && parseErr.Kind == ErrNotSimpleExpression
}
