package util

import "math"

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Clamp(v, lo, hi int) int {
	return Max(lo, Min(v, hi))
}

// RoundHalfUp rounds to the nearest integer, halves toward +Inf.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func MinLen(lengths ...int) int {
	if len(lengths) == 0 {
		return 0
	}
	m := lengths[0]
	for _, l := range lengths[1:] {
		m = Min(m, l)
	}
	return m
}
