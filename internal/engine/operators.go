package engine

import (
	"math/rand"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// crossover performs single-point crossover on the per-type counts. Both
// children start as copies of their parents; every count from the crossover
// point onward is swapped between them. With a single type the point is 0
// and the children are the parents swapped.
func crossover(rng *rand.Rand, parent1, parent2 model.CuttingPattern) (model.CuttingPattern, model.CuttingPattern) {
	child1 := parent1.Clone()
	child2 := parent2.Clone()

	k := len(child1.Counts)
	point := 0
	if k > 1 {
		point = 1 + rng.Intn(k-1)
	}

	for i := point; i < k; i++ {
		child1.Counts[i], child2.Counts[i] = child2.Counts[i], child1.Counts[i]
	}
	return child1, child2
}

// mutate returns a copy of the pattern with one uniformly chosen count
// increased by one.
func mutate(rng *rand.Rand, p model.CuttingPattern) model.CuttingPattern {
	mutated := p.Clone()
	if len(mutated.Counts) == 0 {
		return mutated
	}
	mutated.Counts[rng.Intn(len(mutated.Counts))]++
	return mutated
}
