package optimizer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line builds a symmetric matrix for points on a number line.
func line(xs ...float64) [][]float64 {
	m := make([][]float64, len(xs))
	for i := range xs {
		m[i] = make([]float64, len(xs))
		for j := range xs {
			m[i][j] = math.Abs(xs[i] - xs[j])
		}
	}
	return m
}

func TestSolve_Degenerate(t *testing.T) {
	empty := Solve(Problem{})
	assert.Empty(t, empty.Order)
	assert.Zero(t, empty.Total)

	one := Solve(Problem{Cost: line(5)})
	assert.Equal(t, []int{0}, one.Order)
	assert.False(t, one.Reordered)

	depotOnly := Solve(Problem{Cost: line(0, 7), HasDepot: true})
	assert.Equal(t, []int{1}, depotOnly.Order)
	assert.Equal(t, 7.0, depotOnly.Total)
}

func TestSolve_UntanglesLine(t *testing.T) {
	res := Solve(Problem{Cost: line(0, 30, 10, 20), MaxIterations: 100})
	assert.True(t, res.Reordered)
	assert.Equal(t, 30.0, res.Total)
	assert.Equal(t, 60.0, res.NaiveTotal)
}

func TestSolve_DepotFixedStart(t *testing.T) {
	// depot at 0, stops at 20, 5, 10
	res := Solve(Problem{Cost: line(0, 20, 5, 10), HasDepot: true})
	assert.Equal(t, []int{2, 3, 1}, res.Order)
	assert.Equal(t, 20.0, res.Total)
	assert.Equal(t, 20.0+15+5, res.NaiveTotal)
}

func TestSolve_KeepsInputOrderWithoutGain(t *testing.T) {
	res := Solve(Problem{Cost: line(0, 10, 20, 30)})
	assert.False(t, res.Reordered)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

func TestSolve_NeverWorseThanNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12) + 1
		m := make([][]float64, n)
		for i := range m {
			m[i] = make([]float64, n)
			for j := range m[i] {
				if i != j {
					m[i][j] = float64(rng.Intn(60) + 1)
				}
			}
		}
		p := Problem{Cost: m, HasDepot: trial%2 == 0, MaxIterations: 1 + trial%5}
		res := Solve(p)
		require.LessOrEqual(t, res.Total, res.NaiveTotal+epsilon, "trial %d", trial)
		assert.InDelta(t, PathCost(p, res.Order), res.Total, 1e-9)

		seen := map[int]bool{}
		for _, idx := range res.Order {
			seen[idx] = true
		}
		want := n
		if p.HasDepot {
			want = n - 1
			assert.False(t, seen[0], "depot must not be visited as a stop")
		}
		assert.Len(t, seen, want)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	m := line(3, 14, 1, 9, 27, 5)
	first := Solve(Problem{Cost: m})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Solve(Problem{Cost: m}))
	}
}
