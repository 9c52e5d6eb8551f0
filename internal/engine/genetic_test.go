package engine

import (
	"bytes"
	"errors"
	"log"
	"math/rand"
	"testing"

	"github.com/piwi3910/ShelfCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestTypes() []model.Rect {
	return []model.Rect{
		{Width: 400, Height: 300},
		{Width: 200, Height: 150},
		{Width: 500, Height: 400},
	}
}

func makeTestSheet() model.Sheet {
	return model.Sheet{Width: 1220, Height: 2440}
}

func makeTestConfig(seed int64) GeneticConfig {
	return GeneticConfig{
		PopulationSize:  30,
		Generations:     20,
		DensityFraction: 0.12,
		Seed:            seed,
	}
}

func TestOptimize_ReturnsPatternOverInputTypes(t *testing.T) {
	types := makeTestTypes()
	result, err := Optimize(makeTestSheet(), types, makeTestConfig(42))
	require.NoError(t, err)

	assert.Equal(t, types, result.Pattern.Types)
	require.Len(t, result.Pattern.Counts, len(types))
	for i, c := range result.Pattern.Counts {
		assert.GreaterOrEqual(t, c, 0, "count %d", i)
	}
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, int64(42), result.Seed)
}

func TestOptimize_FindsPerfectFit(t *testing.T) {
	sheet := model.Sheet{Width: 10, Height: 10}
	types := []model.Rect{{Width: 5, Height: 5}}
	config := GeneticConfig{PopulationSize: 20, Generations: 30, DensityFraction: 0.25, Seed: 1}

	result, err := Optimize(sheet, types, config)
	require.NoError(t, err)

	assert.True(t, result.Solved)
	assert.Equal(t, []int{4}, result.Pattern.Counts)
	assert.Equal(t, 0, result.Waste)
	assert.InDelta(t, 0.0, result.WastePercent, 1e-9)
}

func TestOptimize_SolvedPatternIsFeasible(t *testing.T) {
	sheet := makeTestSheet()
	result, err := Optimize(sheet, makeTestTypes(), makeTestConfig(99))
	require.NoError(t, err)
	require.True(t, result.Solved)

	assert.True(t, Feasible(result.Pattern, sheet))
	for _, c := range result.Pattern.Counts {
		assert.GreaterOrEqual(t, c, 1)
	}
	assert.Equal(t, Fitness(result.Pattern, sheet), result.Waste)
	assert.InDelta(t, float64(result.Waste)/float64(sheet.Area())*100, result.WastePercent, 1e-9)
}

func TestOptimize_NoSolutionZeroesPattern(t *testing.T) {
	var buf bytes.Buffer
	sheet := model.Sheet{Width: 4, Height: 4}
	types := []model.Rect{{Width: 5, Height: 5}}
	config := GeneticConfig{PopulationSize: 6, Generations: 3, DensityFraction: 1, Seed: 5, Logger: log.New(&buf, "", 0)}

	result, err := Optimize(sheet, types, config)
	require.NoError(t, err)

	assert.False(t, result.Solved)
	assert.Equal(t, []int{0}, result.Pattern.Counts)
	assert.Equal(t, 16, result.Waste)
	assert.InDelta(t, 100.0, result.WastePercent, 1e-9)
	assert.Contains(t, buf.String(), "no solution found")
}

func TestOptimize_DeterministicForSeed(t *testing.T) {
	a, err := Optimize(makeTestSheet(), makeTestTypes(), makeTestConfig(7))
	require.NoError(t, err)
	b, err := Optimize(makeTestSheet(), makeTestTypes(), makeTestConfig(7))
	require.NoError(t, err)

	assert.Equal(t, a.Pattern.Counts, b.Pattern.Counts)
	assert.Equal(t, a.History, b.History)
}

func TestOptimize_WorkersDoNotChangeOutcome(t *testing.T) {
	seq := makeTestConfig(13)
	par := makeTestConfig(13)
	par.Workers = 6

	a, err := Optimize(makeTestSheet(), makeTestTypes(), seq)
	require.NoError(t, err)
	b, err := Optimize(makeTestSheet(), makeTestTypes(), par)
	require.NoError(t, err)

	assert.Equal(t, a.Pattern.Counts, b.Pattern.Counts)
	assert.Equal(t, a.History, b.History)
}

func TestOptimize_InjectedRandSource(t *testing.T) {
	config := makeTestConfig(0)
	config.Rand = rand.New(rand.NewSource(21))
	a, err := Optimize(makeTestSheet(), makeTestTypes(), config)
	require.NoError(t, err)

	config.Rand = rand.New(rand.NewSource(21))
	b, err := Optimize(makeTestSheet(), makeTestTypes(), config)
	require.NoError(t, err)

	assert.Equal(t, a.Pattern.Counts, b.Pattern.Counts)
}

func TestOptimize_ZeroGenerationsReturnsBestInitial(t *testing.T) {
	sheet := makeTestSheet()
	types := makeTestTypes()
	config := makeTestConfig(17)
	config.Generations = 0

	// Rebuild the same initial population from the same seed.
	g := newGeneticOptimizer(sheet, types, config)
	initial := g.initPopulation()
	g.eval.evaluate(initial)
	best := initial[0]
	for _, ind := range initial[1:] {
		if ind.fitness < best.fitness {
			best = ind
		}
	}

	result, err := Optimize(sheet, types, config)
	require.NoError(t, err)

	assert.Equal(t, best.fitness, result.Waste)
	assert.Equal(t, best.pattern.Counts, result.Pattern.Counts)
	require.Len(t, result.History, 1)
	assert.Equal(t, 0, result.History[0].Generation)
}

func TestOptimize_HistoryBestNeverWorsens(t *testing.T) {
	result, err := Optimize(makeTestSheet(), makeTestTypes(), makeTestConfig(3))
	require.NoError(t, err)

	require.Len(t, result.History, 21)
	for i := 1; i < len(result.History); i++ {
		assert.LessOrEqual(t, result.History[i].BestWaste, result.History[i-1].BestWaste,
			"elitism keeps the best individual (generation %d)", i)
	}
}

func TestOptimize_VerboseLogsGenerations(t *testing.T) {
	var buf bytes.Buffer
	config := makeTestConfig(4)
	config.Generations = 2
	config.Verbose = true
	config.Logger = log.New(&buf, "", 0)

	_, err := Optimize(makeTestSheet(), makeTestTypes(), config)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "generation 0:")
	assert.Contains(t, buf.String(), "generation 2:")
}

func TestOptimize_RejectsInvalidInput(t *testing.T) {
	sheet := makeTestSheet()
	types := makeTestTypes()
	valid := makeTestConfig(1)

	cases := []struct {
		name   string
		sheet  model.Sheet
		types  []model.Rect
		config func(GeneticConfig) GeneticConfig
	}{
		{"zero sheet", model.Sheet{Width: 0, Height: 10}, types, nil},
		{"no types", sheet, nil, nil},
		{"bad type", sheet, []model.Rect{{Width: -1, Height: 2}}, nil},
		{"duplicate type", sheet, []model.Rect{{Width: 1, Height: 2}, {Width: 1, Height: 2}}, nil},
		{"population", sheet, types, func(c GeneticConfig) GeneticConfig { c.PopulationSize = 1; return c }},
		{"generations", sheet, types, func(c GeneticConfig) GeneticConfig { c.Generations = -1; return c }},
		{"density zero", sheet, types, func(c GeneticConfig) GeneticConfig { c.DensityFraction = 0; return c }},
		{"density above one", sheet, types, func(c GeneticConfig) GeneticConfig { c.DensityFraction = 1.5; return c }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := valid
			if tc.config != nil {
				config = tc.config(config)
			}
			_, err := Optimize(tc.sheet, tc.types, config)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestEliteAndBreedingSizes(t *testing.T) {
	cases := []struct{ n, elite, cutoff int }{
		{2, 1, 1},
		{5, 1, 3},
		{20, 1, 10},
		{21, 2, 11},
		{140, 7, 70},
		{150, 8, 75},
	}
	for _, c := range cases {
		assert.Equal(t, c.elite, eliteCount(c.n), "elite for %d", c.n)
		assert.Equal(t, c.cutoff, breedingCutoff(c.n), "cutoff for %d", c.n)
	}
}

func TestNextGeneration_ExactSizeAndElite(t *testing.T) {
	sheet := makeTestSheet()
	types := makeTestTypes()

	for _, n := range []int{2, 3, 4, 5, 7, 21, 40} {
		config := makeTestConfig(int64(n))
		config.PopulationSize = n
		g := newGeneticOptimizer(sheet, types, config)

		pop := g.initPopulation()
		for gen := 0; gen < 5; gen++ {
			g.eval.evaluate(pop)
			rankPopulation(pop)
			elite := eliteCount(n)
			next := g.nextGeneration(pop)

			require.Len(t, next, n, "population %d", n)
			for i := 0; i < elite; i++ {
				assert.Equal(t, pop[i].pattern.Counts, next[i].pattern.Counts, "elite %d carried unchanged", i)
				assert.True(t, next[i].scored)
			}
			for i := elite; i < n; i++ {
				assert.False(t, next[i].scored, "children are unscored")
			}
			for _, ind := range next {
				assert.Equal(t, types, ind.pattern.Types)
				for _, c := range ind.pattern.Counts {
					assert.GreaterOrEqual(t, c, 1)
				}
			}
			pop = next
		}
	}
}

func TestInitPopulation_CountsWithinBounds(t *testing.T) {
	config := makeTestConfig(8)
	config.DensityFraction = 0.3 // ceil(1/0.3) = 4
	g := newGeneticOptimizer(makeTestSheet(), makeTestTypes(), config)

	seen := make(map[int]bool)
	for _, ind := range g.initPopulation() {
		for _, c := range ind.pattern.Counts {
			assert.GreaterOrEqual(t, c, 1)
			assert.LessOrEqual(t, c, 4)
			seen[c] = true
		}
	}
	assert.Len(t, seen, 4, "all values of the range should occur")
}

func TestDefaultGeneticConfig(t *testing.T) {
	sheet := model.Sheet{Width: 10, Height: 10}
	types := []model.Rect{{Width: 5, Height: 5}}

	config := DefaultGeneticConfig(sheet, types)
	assert.Equal(t, 84, config.PopulationSize)
	assert.Equal(t, 63, config.Generations)
	assert.InDelta(t, 0.25, config.DensityFraction, 1e-12)
	assert.Equal(t, 1, config.Workers)
}
