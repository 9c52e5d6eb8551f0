package engine

import (
	"sync"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// Fitness returns the sheet area left unused by the pattern. A pattern the
// shelf packer cannot place scores the full sheet area. Lower is better.
func Fitness(p model.CuttingPattern, sheet model.Sheet) int {
	area := sheet.Area()
	if !Feasible(p, sheet) {
		return area
	}
	return area - p.UsedArea()
}

// evaluator scores a population, optionally across a pool of workers.
// Each worker writes only its own slots, so results do not depend on
// scheduling.
type evaluator struct {
	sheet   model.Sheet
	workers int
}

// evaluate fills in the fitness of every individual not yet scored.
func (e evaluator) evaluate(pop []individual) {
	pending := make([]int, 0, len(pop))
	for i := range pop {
		if !pop[i].scored {
			pending = append(pending, i)
		}
	}

	if e.workers <= 1 || len(pending) < 2 {
		for _, i := range pending {
			e.score(&pop[i])
		}
		return
	}

	workers := e.workers
	if workers > len(pending) {
		workers = len(pending)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				e.score(&pop[i])
			}
		}()
	}
	for _, i := range pending {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func (e evaluator) score(ind *individual) {
	ind.fitness = Fitness(ind.pattern, e.sheet)
	ind.scored = true
}
