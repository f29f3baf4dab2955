// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"time"
)

// Event describes one finished Calculator operation.
//   - Operands holds the input shapes in call order.
//   - Result is the output shape for matrix-valued ops; zero for Determinant.
//   - Value is the determinant; zero for matrix-valued ops.
//   - Err is the error returned to the caller, if any.
type Event struct {
	Op       string
	Operands []Shape
	Result   Shape
	Value    float64
	Elapsed  time.Duration
	Err      error
}

// Observer receives Calculator events. Implementations shared between
// goroutines must be safe for concurrent use.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) { f(ev) }

// Calculator runs the pure kernels and reports each call to an optional
// Observer. The kernels themselves stay free of side effects.
// A Calculator is immutable after NewCalculator and safe for concurrent use.
type Calculator struct {
	opts Options
}

// NewCalculator builds a Calculator from options (see WithObserver, WithMaxOrder).
func NewCalculator(opts ...Option) *Calculator {
	return &Calculator{opts: gatherOptions(opts...)}
}

// Add is the observed form of Add.
func (c *Calculator) Add(a, b Matrix) (Matrix, error) {
	return c.binary(opAdd, Add, a, b)
}

// Sub is the observed form of Sub.
func (c *Calculator) Sub(a, b Matrix) (Matrix, error) {
	return c.binary(opSub, Sub, a, b)
}

// Mul is the observed form of Mul.
func (c *Calculator) Mul(a, b Matrix) (Matrix, error) {
	return c.binary(opMul, Mul, a, b)
}

// Determinant is the observed form of Determinant, bounded by WithMaxOrder.
func (c *Calculator) Determinant(m Matrix) (float64, error) {
	start := time.Now()
	var (
		det float64
		err error
	)
	if c.opts.maxOrder > 0 && ValidateSquare(m) == nil && m.Rows() > c.opts.maxOrder {
		err = matrixErrorf(opDeterminant, fmt.Errorf("order %d > %d: %w", m.Rows(), c.opts.maxOrder, ErrOrderTooLarge))
	} else {
		det, err = Determinant(m)
	}
	c.emit(Event{
		Op:       opDeterminant,
		Operands: []Shape{safeShape(m)},
		Value:    det,
		Elapsed:  time.Since(start),
		Err:      err,
	})

	return det, err
}

func (c *Calculator) binary(op string, kernel func(a, b Matrix) (Matrix, error), a, b Matrix) (Matrix, error) {
	start := time.Now()
	res, err := kernel(a, b)
	c.emit(Event{
		Op:       op,
		Operands: []Shape{safeShape(a), safeShape(b)},
		Result:   safeShape(res),
		Elapsed:  time.Since(start),
		Err:      err,
	})

	return res, err
}

func (c *Calculator) emit(ev Event) {
	if c.opts.observer != nil {
		c.opts.observer.Observe(ev)
	}
}

// safeShape is ShapeOf that also tolerates a typed nil *Dense.
func safeShape(m Matrix) Shape {
	if ValidateNotNil(m) != nil {
		return Shape{}
	}

	return ShapeOf(m)
}
