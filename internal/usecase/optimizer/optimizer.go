// Package optimizer orders a technician's stops to minimize total drive time.
//
// The cost matrix is opaque: cost[i][j] is the drive time from node i to node
// j and need not be symmetric. When a depot is given it is node 0 and every
// route starts there; otherwise the route is an open path over all nodes with
// a free starting point. Routes never return to the start.
package optimizer

const epsilon = 1e-9

// Problem describes one ordering request.
type Problem struct {
	Cost          [][]float64
	HasDepot      bool
	MaxIterations int
}

// Result is a visiting order over stop indices. With a depot, indices are
// into Cost and exclude 0.
type Result struct {
	Order      []int
	Total      float64
	NaiveTotal float64
	Iterations int
	Reordered  bool
}

// Solve runs nearest-neighbour construction followed by 2-opt improvement and
// keeps the input order unless a strictly shorter route was found. The
// returned Total is never greater than NaiveTotal.
func Solve(p Problem) Result {
	naive := naiveOrder(p)
	naiveTotal := pathCost(p, naive)
	res := Result{Order: naive, Total: naiveTotal, NaiveTotal: naiveTotal}
	if len(naive) < 2 {
		return res
	}

	budget := p.MaxIterations
	if budget <= 0 {
		budget = 1000
	}

	candidates := [][]int{nearestNeighbour(p), append([]int(nil), naive...)}
	for _, c := range candidates {
		improved, used := twoOpt(p, c, budget-res.Iterations)
		res.Iterations += used
		if cost := pathCost(p, improved); cost < res.Total-epsilon {
			res.Order = improved
			res.Total = cost
		}
		if res.Iterations >= budget {
			break
		}
	}
	res.Reordered = !sameOrder(res.Order, naive)
	return res
}

// PathCost sums the legs of order, including the depot leg when present.
func PathCost(p Problem, order []int) float64 {
	return pathCost(p, order)
}

func naiveOrder(p Problem) []int {
	n := len(p.Cost)
	start := 0
	if p.HasDepot {
		start = 1
	}
	out := make([]int, 0, max(n-start, 0))
	for i := start; i < n; i++ {
		out = append(out, i)
	}
	return out
}

func pathCost(p Problem, order []int) float64 {
	if len(order) == 0 {
		return 0
	}
	total := 0.0
	if p.HasDepot {
		total += p.Cost[0][order[0]]
	}
	for k := 0; k+1 < len(order); k++ {
		total += p.Cost[order[k]][order[k+1]]
	}
	return total
}

// nearestNeighbour greedily extends from the depot. Without a depot every node
// is tried as the start and the cheapest resulting path wins; ties keep the
// lower start index.
func nearestNeighbour(p Problem) []int {
	if p.HasDepot {
		return greedyFrom(p, 0, naiveOrder(p))
	}
	nodes := naiveOrder(p)
	var best []int
	bestCost := 0.0
	for _, start := range nodes {
		rest := make([]int, 0, len(nodes)-1)
		for _, n := range nodes {
			if n != start {
				rest = append(rest, n)
			}
		}
		path := append([]int{start}, greedyFrom(p, start, rest)...)
		if c := pathCost(p, path); best == nil || c < bestCost-epsilon {
			best, bestCost = path, c
		}
	}
	return best
}

func greedyFrom(p Problem, from int, remaining []int) []int {
	left := append([]int(nil), remaining...)
	out := make([]int, 0, len(left))
	cur := from
	for len(left) > 0 {
		bi := 0
		for i := 1; i < len(left); i++ {
			if p.Cost[cur][left[i]] < p.Cost[cur][left[bi]]-epsilon {
				bi = i
			}
		}
		cur = left[bi]
		out = append(out, cur)
		left = append(left[:bi], left[bi+1:]...)
	}
	return out
}

// twoOpt reverses segments while that shortens the path. Each applied
// reversal costs one iteration. The cost matrix may be asymmetric, so every
// candidate is re-costed in full.
func twoOpt(p Problem, order []int, budget int) ([]int, int) {
	best := append([]int(nil), order...)
	bestCost := pathCost(p, best)
	used := 0
	for improved := true; improved && used < budget; {
		improved = false
		for i := 0; i < len(best)-1 && used < budget; i++ {
			for j := i + 1; j < len(best) && used < budget; j++ {
				cand := reversed(best, i, j)
				if c := pathCost(p, cand); c < bestCost-epsilon {
					best, bestCost = cand, c
					used++
					improved = true
				}
			}
		}
	}
	return best, used
}

func reversed(order []int, i, j int) []int {
	out := append([]int(nil), order...)
	for l, r := i, j; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

func sameOrder(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
