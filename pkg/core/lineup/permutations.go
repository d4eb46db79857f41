package lineup

import "context"

// ctxCheckInterval is how many complete orderings are visited between context checks
const ctxCheckInterval = 4096

// PermutationCount returns n!/(n-k)!, the number of ordered selections of k items
// from n. Returns 0 when k > n or either is negative.
func PermutationCount(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	count := 1
	for i := 0; i < k; i++ {
		count *= n - i
	}
	return count
}

// permuter walks every ordering of k indices drawn from [0, n) in lexicographic order.
// first fixes the index used for position 0; a negative value allows every index.
type permuter struct {
	n, k    int
	first   int
	visited int
}

func (p *permuter) each(ctx context.Context, visit func(perm []int)) error {
	if p.k == 0 {
		return nil
	}

	perm := make([]int, p.k)
	used := make([]bool, p.n)

	var walk func(pos int) error
	walk = func(pos int) error {
		if pos == p.k {
			p.visited++
			if p.visited%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			visit(perm)
			return nil
		}

		for i := 0; i < p.n; i++ {
			if used[i] {
				continue
			}
			if pos == 0 && p.first >= 0 && i != p.first {
				continue
			}

			used[i] = true
			perm[pos] = i
			if err := walk(pos + 1); err != nil {
				return err
			}
			used[i] = false
		}
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return walk(0)
}
