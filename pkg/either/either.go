// Package either provides a two-branch result type.
//
// An Either holds exactly one of a failure value (Left) or a success value
// (Right). Values are built with the Left and Right constructors and are never
// modified afterwards. There is no way to take the success value without also
// handling the failure side:
//
//	res := client.GetTaskByID(ctx, "1")
//	if task, ok := res.Right(); ok {
//	    fmt.Println(task.Title)
//	} else {
//	    e, _ := res.Left()
//	    fmt.Println("failed:", e)
//	}
package either

import "fmt"

type side uint8

const (
	sideNone side = iota
	sideLeft
	sideRight
)

// Either is a failure value of type L or a success value of type R.
//
// The zero value holds neither side and is not produced by any constructor.
type Either[L, R any] struct {
	side  side
	left  L
	right R
}

// Left returns an Either holding the failure value l.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{side: sideLeft, left: l}
}

// Right returns an Either holding the success value r.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{side: sideRight, right: r}
}

// IsLeft reports whether e holds a failure value.
func (e Either[L, R]) IsLeft() bool {
	return e.side == sideLeft
}

// IsRight reports whether e holds a success value.
func (e Either[L, R]) IsRight() bool {
	return e.side == sideRight
}

// Left returns the failure value and true, or the zero L and false when e
// holds a success value.
func (e Either[L, R]) Left() (L, bool) {
	if e.side != sideLeft {
		var zero L
		return zero, false
	}
	return e.left, true
}

// Right returns the success value and true, or the zero R and false when e
// holds a failure value.
func (e Either[L, R]) Right() (R, bool) {
	if e.side != sideRight {
		var zero R
		return zero, false
	}
	return e.right, true
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	switch e.side {
	case sideLeft:
		return fmt.Sprintf("Left(%v)", e.left)
	case sideRight:
		return fmt.Sprintf("Right(%v)", e.right)
	default:
		return "Either(<empty>)"
	}
}

// Fold calls onLeft or onRight depending on which side e holds and returns the
// result. The zero Either holds neither side and takes onRight with a zero R.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.side == sideLeft {
		return onLeft(e.left)
	}
	return onRight(e.right)
}

// Map applies f to the success value. A failure passes through unchanged; the
// zero Either is treated like Fold treats it.
func Map[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if e.side == sideLeft {
		return Left[L, T](e.left)
	}
	return Right[L](f(e.right))
}

// MapLeft applies f to the failure value. A success passes through unchanged.
func MapLeft[L, R, M any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.side == sideLeft {
		return Left[M, R](f(e.left))
	}
	return Right[M](e.right)
}
