// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of these.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrEmptyBuffer      = errors.New("empty buffer")
)

// Operation names the effect that failed.
type Operation string

const (
	OpEqualize  Operation = "equalize"
	OpFade      Operation = "fade"
	OpReverse   Operation = "reverse"
	OpMerge     Operation = "merge"
	OpSidechain Operation = "sidechain"
	OpSummarize Operation = "summarize"
	OpChain     Operation = "chain"
)

// Error is a structured effect failure.
type Error struct {
	Op     Operation
	Param  string // offending setting or input, may be empty
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Param != "" {
		msg += " " + e.Param
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewParameterError reports a setting or input that cannot be used.
func NewParameterError(op Operation, param, format string, args ...any) *Error {
	return &Error{Op: op, Param: param, Kind: ErrInvalidParameter, Detail: fmt.Sprintf(format, args...)}
}

// NewShapeError reports inputs whose shapes cannot be combined.
func NewShapeError(op Operation, format string, args ...any) *Error {
	return &Error{Op: op, Kind: ErrShapeMismatch, Detail: fmt.Sprintf(format, args...)}
}

// NewEmptyError reports an input with nothing to operate on.
func NewEmptyError(op Operation, param, format string, args ...any) *Error {
	return &Error{Op: op, Param: param, Kind: ErrEmptyBuffer, Detail: fmt.Sprintf(format, args...)}
}
