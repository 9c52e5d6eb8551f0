package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/piwi3910/ShelfCut/internal/model"
)

// ErrInvalidInput is wrapped by every error Optimize returns for input that
// violates its preconditions.
var ErrInvalidInput = errors.New("invalid optimizer input")

// Share of the population carried over unchanged, and the rank cutoff
// (exclusive) of the breeding pool, both in percent of the population.
const (
	elitePercent    = 5
	breedingPercent = 50
)

// GeneticConfig holds parameters for the genetic algorithm optimizer.
type GeneticConfig struct {
	PopulationSize  int
	Generations     int
	DensityFraction float64 // Bounds initial counts to [1, ceil(1/DensityFraction)]
	Workers         int     // Fitness evaluation workers, <= 1 = sequential

	// Seed seeds the random source when Rand is nil. Zero picks a time
	// based seed, which is reported back in the result.
	Seed int64
	Rand *rand.Rand

	// Logger receives run progress. Nil discards it.
	Logger  *log.Logger
	Verbose bool // Log a line per generation
}

// DefaultGeneticConfig returns the configuration derived for the given
// sheet and piece types, as a caller without explicit settings would use.
func DefaultGeneticConfig(sheet model.Sheet, types []model.Rect) GeneticConfig {
	return ConfigFromSettings(model.DeriveSettings(model.DefaultSettings(), sheet, types))
}

// ConfigFromSettings converts project settings into an optimizer config.
func ConfigFromSettings(s model.Settings) GeneticConfig {
	return GeneticConfig{
		PopulationSize:  s.PopulationSize,
		Generations:     s.Generations,
		DensityFraction: s.DensityFraction,
		Workers:         s.Workers,
		Seed:            s.Seed,
	}
}

// individual is one candidate cutting pattern and its cached fitness.
type individual struct {
	pattern model.CuttingPattern
	fitness int
	scored  bool
}

// geneticOptimizer implements the genetic algorithm for cutting patterns.
type geneticOptimizer struct {
	sheet  model.Sheet
	types  []model.Rect
	config GeneticConfig
	seed   int64
	rng    *rand.Rand
	eval   evaluator
	logger *log.Logger
}

// newGeneticOptimizer creates a new genetic optimizer instance.
func newGeneticOptimizer(sheet model.Sheet, types []model.Rect, config GeneticConfig) *geneticOptimizer {
	seed := config.Seed
	rng := config.Rand
	if rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	frozen := make([]model.Rect, len(types))
	copy(frozen, types)

	return &geneticOptimizer{
		sheet:  sheet,
		types:  frozen,
		config: config,
		seed:   seed,
		rng:    rng,
		eval:   evaluator{sheet: sheet, workers: config.Workers},
		logger: logger,
	}
}

// Optimize searches for the per-type piece counts that waste the least
// sheet area while still fitting the shelf packer. types must be distinct.
// If no individual of the final generation fits the sheet, the result has
// Solved=false and an all-zero pattern.
func Optimize(sheet model.Sheet, types []model.Rect, config GeneticConfig) (model.Result, error) {
	if err := validate(sheet, types, config); err != nil {
		return model.Result{}, err
	}
	return newGeneticOptimizer(sheet, types, config).optimize(), nil
}

func validate(sheet model.Sheet, types []model.Rect, config GeneticConfig) error {
	if !sheet.Valid() {
		return fmt.Errorf("sheet %s must have positive dimensions: %w", sheet, ErrInvalidInput)
	}
	if len(types) == 0 {
		return fmt.Errorf("at least one rectangle type is required: %w", ErrInvalidInput)
	}
	seen := make(map[model.Rect]bool, len(types))
	for _, t := range types {
		if !t.Valid() {
			return fmt.Errorf("rectangle %s must have positive dimensions: %w", t, ErrInvalidInput)
		}
		if seen[t] {
			return fmt.Errorf("duplicate rectangle type %s: %w", t, ErrInvalidInput)
		}
		seen[t] = true
	}
	if config.PopulationSize < 2 {
		return fmt.Errorf("population size %d is below 2: %w", config.PopulationSize, ErrInvalidInput)
	}
	if config.Generations < 0 {
		return fmt.Errorf("generation count %d is negative: %w", config.Generations, ErrInvalidInput)
	}
	if !(config.DensityFraction > 0 && config.DensityFraction <= 1) {
		return fmt.Errorf("density fraction %g is outside (0, 1]: %w", config.DensityFraction, ErrInvalidInput)
	}
	return nil
}

// optimize runs the genetic algorithm and returns the best result.
func (g *geneticOptimizer) optimize() model.Result {
	runID := uuid.New().String()
	g.logger.Printf("run %s: sheet %s, %d types, population %d, %d generations, seed %d",
		runID[:8], g.sheet, len(g.types), g.config.PopulationSize, g.config.Generations, g.seed)

	population := g.initPopulation()
	history := make([]model.GenerationStats, 0, g.config.Generations+1)

	for gen := 0; gen < g.config.Generations; gen++ {
		g.eval.evaluate(population)
		rankPopulation(population)
		history = append(history, g.stats(gen, population))
		population = g.nextGeneration(population)
	}

	g.eval.evaluate(population)
	rankPopulation(population)
	history = append(history, g.stats(g.config.Generations, population))

	best := population[0]
	area := g.sheet.Area()
	result := model.Result{
		RunID:          runID,
		Sheet:          g.sheet,
		Pattern:        best.pattern.Clone(),
		Waste:          best.fitness,
		Solved:         true,
		Seed:           g.seed,
		PopulationSize: g.config.PopulationSize,
		Generations:    g.config.Generations,
		History:        history,
	}

	if best.fitness == area {
		g.logger.Printf("run %s: no solution found", runID[:8])
		result.Pattern = best.pattern.Zeroed()
		result.Solved = false
	}
	result.Waste = Fitness(result.Pattern, g.sheet)
	result.WastePercent = float64(result.Waste) / float64(area) * 100.0

	g.logger.Printf("run %s: best waste %d (%.2f%%), pattern %v",
		runID[:8], result.Waste, result.WastePercent, result.Pattern.Counts)
	return result
}

// initPopulation creates the initial random population. Each count is drawn
// uniformly from [1, ceil(1/DensityFraction)].
func (g *geneticOptimizer) initPopulation() []individual {
	upper := int(math.Ceil(1 / g.config.DensityFraction))
	if upper < 1 {
		upper = 1
	}

	population := make([]individual, g.config.PopulationSize)
	for i := range population {
		p := model.NewCuttingPattern(g.types)
		for j := range p.Counts {
			p.Counts[j] = 1 + g.rng.Intn(upper)
		}
		population[i] = individual{pattern: p}
	}
	return population
}

// rankPopulation sorts by fitness ascending. The sort is stable so equal
// fitness keeps the previous order.
func rankPopulation(population []individual) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].fitness < population[j].fitness
	})
}

// eliteCount returns ceil(5% of n).
func eliteCount(n int) int {
	return (n*elitePercent + 99) / 100
}

// breedingCutoff returns ceil(50% of n).
func breedingCutoff(n int) int {
	return (n*breedingPercent + 99) / 100
}

// nextGeneration builds the following generation from a ranked population:
// the elite is carried over unchanged, the rest is bred from shuffled pairs
// of the breeding pool. The result has exactly PopulationSize members.
func (g *geneticOptimizer) nextGeneration(ranked []individual) []individual {
	n := g.config.PopulationSize
	elite := eliteCount(n)
	cutoff := breedingCutoff(n)

	next := make([]individual, 0, n)
	next = append(next, ranked[:elite]...)

	var pool []individual
	if cutoff > elite {
		pool = append(pool, ranked[elite:cutoff]...)
	}
	// Small populations leave fewer than two candidates past the elite.
	if len(pool) < 2 {
		pool = append(pool[:0], ranked...)
	}

	g.shuffle(pool)
	i := 0
	for len(next) < n {
		if i+1 >= len(pool) {
			g.shuffle(pool)
			i = 0
		}

		child1, child2 := crossover(g.rng, pool[i].pattern, pool[i+1].pattern)
		child1 = mutate(g.rng, child1)
		child2 = mutate(g.rng, child2)

		next = append(next, individual{pattern: child1})
		if len(next) < n {
			next = append(next, individual{pattern: child2})
		}
		i += 2
	}

	return next
}

func (g *geneticOptimizer) shuffle(pool []individual) {
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

// stats summarizes a ranked generation and logs it when verbose.
func (g *geneticOptimizer) stats(gen int, ranked []individual) model.GenerationStats {
	area := g.sheet.Area()
	var sum, infeasible int
	for _, ind := range ranked {
		sum += ind.fitness
		if ind.fitness == area {
			infeasible++
		}
	}

	best := make([]int, len(ranked[0].pattern.Counts))
	copy(best, ranked[0].pattern.Counts)

	s := model.GenerationStats{
		Generation:  gen,
		BestWaste:   ranked[0].fitness,
		MeanWaste:   float64(sum) / float64(len(ranked)),
		Infeasible:  infeasible,
		BestPattern: best,
	}
	if g.config.Verbose {
		g.logger.Printf("generation %d: best waste %d, mean %.1f, infeasible %d/%d",
			gen, s.BestWaste, s.MeanWaste, infeasible, len(ranked))
	}
	return s
}
