// Package irr computes the internal rate of return of a cash-flow series:
// the periodic rate making its net present value zero.
package irr

import (
	"errors"
	"math"
)

// ErrNoConvergence is returned when no real root above -100% exists or the
// solver cannot find one (e.g. cash flows with no sign change, or multiple
// sign changes producing a pathological NPV curve).
var ErrNoConvergence = errors.New("irr: no convergence")

// Solver finds the periodic rate (a fraction, e.g. 0.08 for 8%) for a
// series whose first element is usually the negative initial outlay.
type Solver interface {
	Rate(cashFlows []float64) (float64, error)
}

// NewtonSolver runs Newton-Raphson on the NPV function, falling back to
// bisection over a bracketing scan when Newton stalls or diverges.
type NewtonSolver struct {
	MaxIterations int     // 0 means 100
	Tolerance     float64 // 0 means 1e-7
}

func (s NewtonSolver) Rate(cashFlows []float64) (float64, error) {
	if len(cashFlows) < 2 {
		return 0, ErrNoConvergence
	}
	if !hasSignChange(cashFlows) {
		// NPV is monotone in sign; no root exists.
		return 0, ErrNoConvergence
	}

	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = 100
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = 1e-7
	}

	rate := 0.1
	for i := 0; i < maxIter; i++ {
		value := npv(rate, cashFlows)
		if math.Abs(value) < tol {
			if !valid(rate) {
				break
			}
			return rate, nil
		}
		derivative := dnpv(rate, cashFlows)
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			break
		}
		next := rate - value/derivative
		if math.IsNaN(next) || next <= -1 {
			break
		}
		rate = next
	}

	return s.bisect(cashFlows, tol)
}

// bisect scans (-1, 10] for a sign change of NPV and narrows it down.
func (s NewtonSolver) bisect(cashFlows []float64, tol float64) (float64, error) {
	const steps = 1000
	lo, hi := -0.9999, 10.0
	step := (hi - lo) / steps

	prevRate := lo
	prevVal := npv(lo, cashFlows)
	for i := 1; i <= steps; i++ {
		rate := lo + float64(i)*step
		val := npv(rate, cashFlows)
		if prevVal == 0 {
			return prevRate, nil
		}
		if prevVal*val < 0 {
			a, b := prevRate, rate
			for j := 0; j < 200; j++ {
				mid := (a + b) / 2
				mv := npv(mid, cashFlows)
				if math.Abs(mv) < tol || (b-a)/2 < tol {
					if valid(mid) {
						return mid, nil
					}
					return 0, ErrNoConvergence
				}
				if prevVal*mv < 0 {
					b = mid
				} else {
					a = mid
					prevVal = mv
				}
			}
			return 0, ErrNoConvergence
		}
		prevRate, prevVal = rate, val
	}
	return 0, ErrNoConvergence
}

func npv(rate float64, cashFlows []float64) float64 {
	var sum float64
	for t, cf := range cashFlows {
		sum += cf / math.Pow(1+rate, float64(t))
	}
	return sum
}

func dnpv(rate float64, cashFlows []float64) float64 {
	var sum float64
	for t, cf := range cashFlows {
		if t == 0 {
			continue
		}
		sum -= float64(t) * cf / math.Pow(1+rate, float64(t+1))
	}
	return sum
}

func hasSignChange(cashFlows []float64) bool {
	var sign int
	for _, cf := range cashFlows {
		switch {
		case cf > 0:
			if sign < 0 {
				return true
			}
			sign = 1
		case cf < 0:
			if sign > 0 {
				return true
			}
			sign = -1
		}
	}
	return false
}

func valid(rate float64) bool {
	return !math.IsNaN(rate) && !math.IsInf(rate, 0) && rate > -1
}
