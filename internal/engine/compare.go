package engine

import (
	"fmt"
	"log"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the optimization result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.Result
	TotalPieces  int
	WastePercent float64
	Solved       bool
	Err          error
}

// CompareScenarios runs optimization for each scenario and returns the
// results in scenario order. Settings left at zero are derived from the
// sheet and types. A scenario whose settings are rejected carries the error
// in its result instead of aborting the comparison.
func CompareScenarios(scenarios []ComparisonScenario, sheet model.Sheet, types []model.Rect, logger *log.Logger) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		settings := model.DeriveSettings(scenario.Settings, sheet, types)
		config := ConfigFromSettings(settings)
		config.Logger = logger

		result, err := Optimize(sheet, types, config)
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Result:       result,
			TotalPieces:  result.Pattern.TotalPieces(),
			WastePercent: result.WastePercent,
			Solved:       result.Solved,
		})
	}

	return results
}

// BestComparison returns the index of the solved result with the lowest
// waste, or -1 if none is solved. Earlier scenarios win ties.
func BestComparison(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if r.Err != nil || !r.Solved {
			continue
		}
		if best < 0 || r.WastePercent < results[best].WastePercent {
			best = i
		}
	}
	return best
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the given settings, varying the seed and the search budget to show
// what-if alternatives.
func BuildDefaultScenarios(base model.Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	// Scenario: Same budget, different random streams
	for _, offset := range []int64{1, 2} {
		alt := base
		alt.Seed = base.Seed + offset
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Seed %d", alt.Seed),
			Settings: alt,
		})
	}

	// Scenario: Larger population
	if base.PopulationSize > 0 {
		bigger := base
		bigger.PopulationSize = base.PopulationSize * 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Population %d (double)", bigger.PopulationSize),
			Settings: bigger,
		})
	}

	// Scenario: Longer search
	if base.Generations > 0 {
		longer := base
		longer.Generations = base.Generations * 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Generations %d (double)", longer.Generations),
			Settings: longer,
		})
	}

	return scenarios
}
