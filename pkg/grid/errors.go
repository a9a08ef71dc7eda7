package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange reports an axis index outside the current logical extent.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidArgument reports a bad size, capacity, offset or destination.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState reports a removal from an axis that is already empty.
	ErrInvalidState = errors.New("invalid state")
)

// Axis names one of the two growable dimensions.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "-"
	}
}

// Error describes a rejected operation. Err is one of the package sentinels,
// so callers can match with errors.Is and still read the axis and value.
type Error struct {
	Op    string
	Axis  Axis
	Value int
	Limit int
	Err   error
}

func (e *Error) Error() string {
	switch e.Err {
	case ErrOutOfRange:
		return fmt.Sprintf("grid: %s: %s index %d out of range (size %d)", e.Op, e.Axis, e.Value, e.Limit)
	case ErrInvalidState:
		return fmt.Sprintf("grid: %s: %s axis is empty", e.Op, e.Axis)
	}
	if e.Axis == AxisNone {
		return fmt.Sprintf("grid: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("grid: %s: %v: %s=%d (limit %d)", e.Op, e.Err, e.Axis, e.Value, e.Limit)
}

func (e *Error) Unwrap() error { return e.Err }

func outOfRange(op string, axis Axis, index, size int) error {
	return errors.WithStack(&Error{Op: op, Axis: axis, Value: index, Limit: size, Err: ErrOutOfRange})
}

func emptyAxis(op string, axis Axis) error {
	return errors.WithStack(&Error{Op: op, Axis: axis, Err: ErrInvalidState})
}

func badArgument(op string, axis Axis, value, limit int) error {
	return errors.WithStack(&Error{Op: op, Axis: axis, Value: value, Limit: limit, Err: ErrInvalidArgument})
}
