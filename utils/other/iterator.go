package otherUtils

// Iterator walks every K-combination of the indexes [0, N), in
// lexicographic order. Comb holds the current combination after each
// successful Next.
type Iterator struct {
	N, K int
	Comb []int

	started bool
}

func (it *Iterator) Next() bool {
	if it.K <= 0 || it.K > it.N {
		return false
	}

	if !it.started {
		it.Comb = make([]int, it.K)
		for i := range it.Comb {
			it.Comb[i] = i
		}
		it.started = true
		return true
	}

	// encontra a posição mais à direita que ainda pode avançar
	i := it.K - 1
	for i >= 0 && it.Comb[i] == it.N-it.K+i {
		i--
	}
	if i < 0 {
		return false
	}

	it.Comb[i]++
	for j := i + 1; j < it.K; j++ {
		it.Comb[j] = it.Comb[j-1] + 1
	}
	return true
}
