// Package workpool runs one unit of work per partition and waits for all of
// them before returning.
package workpool

import (
	"fmt"

	"github.com/dgravesa/go-parallel/parallel"
)

// Unit computes partition i. It must only write state that partition i owns.
type Unit func(i int) error

// Runner executes units 0..n-1 and returns after every unit has finished.
type Runner func(n int, unit Unit) error

// Parallel spreads n units over the go-parallel worker goroutines. Every
// unit runs to completion even when another one fails; the error of the
// lowest failing index is returned after the barrier. A panicking unit is
// reported as an error.
func Parallel(n int, unit Unit) error {
	if n <= 0 {
		return nil
	}
	errs := make([]error, n)
	parallel.For(n, func(i, _ int) {
		errs[i] = run(i, unit)
	})
	return first(errs)
}

// Sequential runs the units in index order on the calling goroutine with
// the same error contract as Parallel.
func Sequential(n int, unit Unit) error {
	if n <= 0 {
		return nil
	}
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		errs[i] = run(i, unit)
	}
	return first(errs)
}

func run(i int, unit Unit) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("workpool: unit %d panicked: %v", i, r)
		}
	}()
	return unit(i)
}

func first(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
