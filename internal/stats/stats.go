package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Percentiles is the fixed percentile set reported for every metric.
type Percentiles struct {
	P5  float64 `json:"5th"`
	P10 float64 `json:"10th"`
	P25 float64 `json:"25th"`
	P75 float64 `json:"75th"`
	P90 float64 `json:"90th"`
	P95 float64 `json:"95th"`
}

// Summary is the per-metric reduction of a sample vector.
// Std is the population standard deviation (divisor n, not n-1).
type Summary struct {
	Mean        float64     `json:"mean"`
	Median      float64     `json:"median"`
	Std         float64     `json:"std"`
	Min         float64     `json:"min"`
	Max         float64     `json:"max"`
	Percentiles Percentiles `json:"percentiles"`
}

// Describe reduces a sample vector. A degenerate sample (all values equal)
// yields Std == 0, never NaN.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Summary{
		Mean:   Mean(values),
		Median: PercentileSorted(sorted, 0.5),
		Std:    PopStdDev(values),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Percentiles: Percentiles{
			P5:  PercentileSorted(sorted, 0.05),
			P10: PercentileSorted(sorted, 0.10),
			P25: PercentileSorted(sorted, 0.25),
			P75: PercentileSorted(sorted, 0.75),
			P90: PercentileSorted(sorted, 0.90),
			P95: PercentileSorted(sorted, 0.95),
		},
	}
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// PopStdDev is the population standard deviation.
func PopStdDev(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	mean := stat.Mean(values, nil)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(n))
}

// Percentile sorts a copy of values and interpolates; q is a fraction in [0,1].
func Percentile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return PercentileSorted(sorted, q)
}

// PercentileSorted interpolates linearly between the closest ranks of an
// already-sorted sample.
func PercentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
