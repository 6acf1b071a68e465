// Package peers groups learners by behavior and matches study partners.
package peers

import (
	"math"
	"math/rand/v2"
)

const (
	numClusters   = 3
	maxIterations = 50
)

// kmeans buckets the feature rows into numClusters clusters and returns a
// cluster index per row. Features are standardized first so no single
// dimension dominates. Seeding is deterministic so repeated calls over the
// same data agree.
func kmeans(features [][]float64) []int {
	n := len(features)
	if n == 0 {
		return nil
	}
	k := numClusters
	if n < k {
		k = n
	}
	dims := len(features[0])

	std := standardize(features)

	rng := rand.New(rand.NewPCG(42, uint64(n)))
	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(n)[:k] {
		centroids[i] = append([]float64(nil), std[idx]...)
	}

	assign := make([]int, n)
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, row := range std {
			best, bestDist := 0, math.Inf(1)
			for c, cen := range centroids {
				if d := sqDist(row, cen); d < bestDist {
					best, bestDist = c, d
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, row := range std {
			c := assign[i]
			counts[c]++
			for d, v := range row {
				sums[c][d] += v
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			for d := range centroids[c] {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}
	return assign
}

func standardize(features [][]float64) [][]float64 {
	n := len(features)
	dims := len(features[0])

	mean := make([]float64, dims)
	for _, row := range features {
		for d, v := range row {
			mean[d] += v
		}
	}
	for d := range mean {
		mean[d] /= float64(n)
	}

	stddev := make([]float64, dims)
	for _, row := range features {
		for d, v := range row {
			diff := v - mean[d]
			stddev[d] += diff * diff
		}
	}
	for d := range stddev {
		stddev[d] = math.Sqrt(stddev[d] / float64(n))
		if stddev[d] == 0 {
			stddev[d] = 1
		}
	}

	out := make([][]float64, n)
	for i, row := range features {
		out[i] = make([]float64, dims)
		for d, v := range row {
			out[i][d] = (v - mean[d]) / stddev[d]
		}
	}
	return out
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
