package aod

import "math"

// minTolerance is the floor applied to any caller-supplied tolerance.
const minTolerance float32 = 0.000001

// circularMean computes a representative angle, in radians, from a set
// of samples on the unit circle.
//
// It first computes the extrinsic mean (project the vector mean of
// (cos phi, sin phi) back onto the circle). If maxIterations < 1, that
// extrinsic mean is returned directly. Otherwise it refines iteratively
// toward the intrinsic mean, minimizing angular distance to every input
// sample, stopping early once the residual or the step size falls below
// tolerance (floored at minTolerance).
//
// angles_count == 0 returns 0; angles_count == 1 returns that angle
// unchanged. The function is total: it never fails, though for very
// scattered inputs it may converge to a local optimum.
func circularMean(angles []float32, maxIterations int, tolerance float32) float32 {
	if len(angles) < 2 {
		if len(angles) == 1 {
			return angles[0]
		}
		return 0
	}

	var sumCos, sumSin float32
	for _, phi := range angles {
		sumCos += float32(math.Cos(float64(phi)))
		sumSin += float32(math.Sin(float64(phi)))
	}
	extrinsicMean := float32(math.Atan2(float64(sumSin), float64(sumCos)))

	if maxIterations < 1 {
		return extrinsicMean
	}

	if tolerance < minTolerance {
		tolerance = minTolerance
	}

	mean := extrinsicMean
	previous := mean

	for iteration := 0; iteration < maxIterations; iteration++ {
		var sumCosEps, sumSinEps float32
		for _, phi := range angles {
			eps := phi - mean
			if eps > math.Pi {
				eps -= 2 * math.Pi
			} else if eps < -math.Pi {
				eps += 2 * math.Pi
			}
			sumCosEps += float32(math.Cos(float64(eps)))
			sumSinEps += float32(math.Sin(float64(eps)))
		}

		mean += float32(math.Atan2(float64(sumSinEps), float64(sumCosEps)))
		if mean > math.Pi {
			mean -= 2 * math.Pi
		} else if mean < -math.Pi {
			mean += 2 * math.Pi
		}

		if abs32(sumSinEps) < tolerance {
			return mean
		}
		if abs32(mean-previous) < tolerance {
			return mean
		}
		previous = mean
	}

	return mean
}

// circularMeanExtrinsic is circularMean with refinement disabled.
func circularMeanExtrinsic(angles []float32) float32 {
	return circularMean(angles, 0, 0)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
