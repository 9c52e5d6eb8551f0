// Package export provides functionality for exporting optimization results
// to PDF, QR-coded labels, Excel workbooks, DXF drawings and text cut lists.
package export

import (
	"fmt"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// Report is the rendered view of one optimization run shared by every
// exporter: the result, its concrete shelf layout, the reusable offcuts and
// the saw cuts that free the pieces.
type Report struct {
	Name    string
	Result  model.Result
	Layout  model.Layout
	Offcuts []model.Offcut
	Cuts    []model.Cut

	project model.Project
}

// NewReport builds a report for the project's last result using the given
// layout. Offcuts shorter than minOffcut on either side are left out.
func NewReport(project model.Project, layout model.Layout, minOffcut int) (Report, error) {
	if project.Result == nil {
		return Report{}, fmt.Errorf("project %q has no result to export", project.Name)
	}
	return Report{
		Name:    project.Name,
		Result:  *project.Result,
		Layout:  layout,
		Offcuts: model.DetectOffcuts(layout, minOffcut),
		Cuts:    model.CutSequence(layout),
		project: project,
	}, nil
}

// TypeLabel returns the user label for the piece type at index i of the
// result's pattern.
func (r Report) TypeLabel(i int) string {
	if i < 0 || i >= len(r.Result.Pattern.Types) {
		return ""
	}
	return r.project.Label(r.Result.Pattern.Types[i])
}
