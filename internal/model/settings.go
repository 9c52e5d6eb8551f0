package model

import "math"

// Settings holds the genetic algorithm hyperparameters for a project.
// Zero values are filled in by DeriveSettings.
type Settings struct {
	PopulationSize  int     `json:"population_size"`  // Individuals per generation, 0 = derive
	Generations     int     `json:"generations"`      // Generation count, 0 with DeriveGenerations = derive
	DensityFraction float64 `json:"density_fraction"` // Piece area / sheet area, 0 = derive
	Seed            int64   `json:"seed"`             // Random seed, 0 = time based
	Workers         int     `json:"workers"`          // Fitness evaluation workers, <= 1 = sequential

	// DeriveGenerations makes a zero Generations mean "derive" rather than
	// "evaluate the initial population only".
	DeriveGenerations bool `json:"derive_generations"`
}

func DefaultSettings() Settings {
	return Settings{DeriveGenerations: true, Workers: 1}
}

// Base population added to the inverse density when deriving a
// population size, and the share of it used as generation count.
const (
	basePopulation    = 80
	generationsFactor = 0.75
)

// DensityFraction returns the summed area of one piece of each type
// divided by the sheet area, capped at 1.
func DensityFraction(sheet Sheet, types []Rect) float64 {
	if sheet.Area() <= 0 {
		return 1
	}
	var total int
	for _, t := range types {
		total += t.Area()
	}
	d := float64(total) / float64(sheet.Area())
	if d > 1 {
		return 1
	}
	return d
}

// DeriveSettings fills zero fields of s from the sheet and piece types.
// The population grows with how many times the piece set fits the sheet.
func DeriveSettings(s Settings, sheet Sheet, types []Rect) Settings {
	if s.DensityFraction <= 0 {
		s.DensityFraction = DensityFraction(sheet, types)
	}
	if s.DensityFraction <= 0 {
		s.DensityFraction = 1
	}
	if s.PopulationSize == 0 {
		s.PopulationSize = basePopulation + int(math.Floor(1/s.DensityFraction))
	}
	if s.Generations == 0 && s.DeriveGenerations {
		s.Generations = int(math.Floor(generationsFactor * float64(s.PopulationSize)))
	}
	if s.Workers < 1 {
		s.Workers = 1
	}
	return s
}
