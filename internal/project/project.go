// Package project persists projects, the app config, the sheet preset
// inventory and full backups as JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// SaveProject writes the project to path as JSON.
func SaveProject(path string, p model.Project) error {
	if err := writeJSON(path, p); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// LoadProject reads a project from path. Settings missing from the file
// keep their defaults. A stored result whose pattern counts do not match
// its types is rejected.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project: %w", err)
	}
	p := model.NewProject()
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project: %w", err)
	}
	if p.Pieces == nil {
		p.Pieces = []model.PieceType{}
	}
	if r := p.Result; r != nil && len(r.Pattern.Counts) != len(r.Pattern.Types) {
		return model.Project{}, fmt.Errorf("failed to parse project: result pattern has %d counts for %d types",
			len(r.Pattern.Counts), len(r.Pattern.Types))
	}
	return p, nil
}
