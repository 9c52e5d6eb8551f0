// ShelfCut searches for how many pieces of each rectangle type to cut from
// a single stock sheet so that the least area is wasted, and exports the
// resulting shelf layout.
//
// Build:
//
//	go build -o shelfcut ./cmd/shelfcut
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/piwi3910/ShelfCut/internal/engine"
	"github.com/piwi3910/ShelfCut/internal/export"
	"github.com/piwi3910/ShelfCut/internal/importer"
	"github.com/piwi3910/ShelfCut/internal/model"
	"github.com/piwi3910/ShelfCut/internal/project"
)

func main() {
	a := newApp(os.Stdout, os.Stderr, project.DefaultConfigDir())
	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		a.logger.Print(err)
		os.Exit(1)
	}
}

// app carries the output streams and config location of one invocation.
type app struct {
	out       io.Writer
	logger    *log.Logger
	configDir string
}

func newApp(stdout, stderr io.Writer, configDir string) *app {
	return &app{
		out:       stdout,
		logger:    log.New(stderr, "shelfcut: ", 0),
		configDir: configDir,
	}
}

func (a *app) configPath() string {
	return filepath.Join(a.configDir, "config.json")
}

func (a *app) inventoryPath() string {
	return filepath.Join(a.configDir, "inventory.json")
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "optimize":
		return a.runOptimize(ctx, args[1:])
	case "compare":
		return a.runCompare(ctx, args[1:])
	case "presets":
		return a.runPresets(ctx, args[1:])
	case "backup":
		return a.runBackup(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: shelfcut <optimize|compare|presets|backup> [flags]", msg)
}

func (a *app) runOptimize(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("optimize", flag.ContinueOnError)
	fs.SetOutput(a.logger.Writer())
	in := registerInputFlags(fs)
	pdfPath := fs.String("pdf", "", "write the layout and summary as PDF")
	labelsPath := fs.String("labels", "", "write QR piece labels as PDF")
	xlsxPath := fs.String("xlsx", "", "write the result as an Excel workbook")
	dxfPath := fs.String("dxf", "", "write the layout as a DXF drawing")
	cutsPath := fs.String("cuts", "", "write the saw cut sequence as a text cut list")
	savePath := fs.String("save", "", "save the project with its result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := project.LoadAppConfig(a.configPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	proj, err := a.buildProject(in, cfg)
	if err != nil {
		return err
	}
	types := model.Rects(proj.Pieces)
	settings := model.DeriveSettings(proj.Settings, proj.Sheet, types)

	config := engine.ConfigFromSettings(settings)
	config.Logger = a.logger
	config.Verbose = *in.verbose

	result, err := engine.Optimize(proj.Sheet, types, config)
	if err != nil {
		return err
	}
	proj.Result = &result
	a.printResult(proj)

	if err := ctx.Err(); err != nil {
		return err
	}

	layout := engine.LayoutFor(result)
	report, err := export.NewReport(proj, layout, cfg.MinOffcutDimension)
	if err != nil {
		return err
	}

	exports := []struct {
		path  string
		write func(string, export.Report) error
	}{
		{*pdfPath, export.ExportPDF},
		{*labelsPath, export.ExportLabels},
		{*xlsxPath, export.ExportExcel},
		{*dxfPath, export.ExportDXF},
		{*cutsPath, export.ExportCutList},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.write(e.path, report); err != nil {
			return fmt.Errorf("failed to export %s: %w", e.path, err)
		}
		fmt.Fprintf(a.out, "wrote %s\n", e.path)
	}

	if *savePath != "" {
		if err := project.SaveProject(*savePath, proj); err != nil {
			return err
		}
		cfg.AddRecentProject(*savePath)
		if err := project.SaveAppConfig(a.configPath(), cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(a.out, "saved %s\n", *savePath)
	}
	return nil
}

func (a *app) runCompare(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(a.logger.Writer())
	in := registerInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := project.LoadAppConfig(a.configPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	proj, err := a.buildProject(in, cfg)
	if err != nil {
		return err
	}
	types := model.Rects(proj.Pieces)
	base := model.DeriveSettings(proj.Settings, proj.Sheet, types)

	// Scenario seeds are offsets from the base seed
	if base.Seed == 0 {
		base.Seed = 1
	}

	logger := a.logger
	if !*in.verbose {
		logger = log.New(io.Discard, "", 0)
	}

	var results []engine.ComparisonResult
	for _, scenario := range engine.BuildDefaultScenarios(base) {
		if err := ctx.Err(); err != nil {
			return err
		}
		results = append(results, engine.CompareScenarios([]engine.ComparisonScenario{scenario}, proj.Sheet, types, logger)...)
	}

	best := engine.BestComparison(results)
	fmt.Fprintf(a.out, "%-32s %10s %8s %7s\n", "SCENARIO", "WASTE %", "PIECES", "SOLVED")
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(a.out, "%-32s error: %v\n", r.Scenario.Name, r.Err)
			continue
		}
		marker := ""
		if i == best {
			marker = " *"
		}
		fmt.Fprintf(a.out, "%-32s %10.2f %8d %7t%s\n", r.Scenario.Name, r.WastePercent, r.TotalPieces, r.Solved, marker)
	}
	return nil
}

func (a *app) runPresets(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	fs.SetOutput(a.logger.Writer())
	add := fs.String("add", "", "add a preset as NAME=WxH")
	material := fs.String("material", "", "material of the added preset")
	remove := fs.String("remove", "", "remove the preset with this ID")
	importPath := fs.String("import", "", "merge presets from an inventory JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	inv, err := project.LoadInventory(a.inventoryPath())
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	changed := false
	if *importPath != "" {
		before := len(inv.Sheets)
		inv, err = project.ImportInventory(*importPath, inv)
		if err != nil {
			return fmt.Errorf("failed to import inventory: %w", err)
		}
		a.logger.Printf("imported %d presets from %s", len(inv.Sheets)-before, *importPath)
		changed = true
	}
	if *add != "" {
		piece, err := parsePiece(*add)
		if err != nil {
			return err
		}
		if piece.Label == "" {
			return fmt.Errorf("preset %q needs a name: use NAME=WxH", *add)
		}
		preset := model.NewSheetPreset(piece.Label, piece.Rect.Width, piece.Rect.Height, *material)
		inv.Add(preset)
		a.logger.Printf("added preset %s (%s)", preset.ID, preset.Name)
		changed = true
	}
	if *remove != "" {
		if !inv.Remove(*remove) {
			return fmt.Errorf("no preset with ID %q", *remove)
		}
		a.logger.Printf("removed preset %s", *remove)
		changed = true
	}
	if changed {
		if err := project.SaveInventory(a.inventoryPath(), inv); err != nil {
			return fmt.Errorf("failed to save inventory: %w", err)
		}
	}

	fmt.Fprintf(a.out, "%-8s %-32s %-12s %s\n", "ID", "NAME", "SIZE", "MATERIAL")
	for _, s := range inv.Sheets {
		fmt.Fprintf(a.out, "%-8s %-32s %-12s %s\n", s.ID, s.Name, s.Sheet(), s.Material)
	}
	return nil
}

func (a *app) runBackup(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	fs.SetOutput(a.logger.Writer())
	exportPath := fs.String("export", "", "write config and presets to a backup file")
	restorePath := fs.String("restore", "", "replace config and presets from a backup file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *exportPath != "" && *restorePath != "":
		return errors.New("use either -export or -restore, not both")
	case *exportPath != "":
		cfg, err := project.LoadAppConfig(a.configPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		inv, err := project.LoadInventory(a.inventoryPath())
		if err != nil {
			return fmt.Errorf("failed to load inventory: %w", err)
		}
		if err := project.ExportAllData(*exportPath, cfg, inv); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "wrote %s\n", *exportPath)
	case *restorePath != "":
		backup, err := project.ImportAllData(*restorePath)
		if err != nil {
			return err
		}
		if err := project.SaveAppConfig(a.configPath(), backup.Config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		if err := project.SaveInventory(a.inventoryPath(), backup.Inventory); err != nil {
			return fmt.Errorf("failed to save inventory: %w", err)
		}
		fmt.Fprintf(a.out, "restored backup %s from %s (%d presets)\n", backup.Version, backup.CreatedAt, len(backup.Inventory.Sheets))
	default:
		return errors.New("backup needs -export FILE or -restore FILE")
	}
	return nil
}

// buildProject assembles the project to optimize: a loaded project file if
// given, then the sheet, pieces and settings from the flags on top. The
// sheet is normalized once here.
func (a *app) buildProject(in *inputFlags, cfg model.AppConfig) (model.Project, error) {
	proj := model.NewProject()
	if *in.projectPath != "" {
		loaded, err := project.LoadProject(*in.projectPath)
		if err != nil {
			return model.Project{}, err
		}
		proj = loaded
		proj.Result = nil
	}
	if *in.name != "" {
		proj.Name = *in.name
	}

	switch {
	case *in.sheet != "":
		r, err := parseDims(*in.sheet)
		if err != nil {
			return model.Project{}, fmt.Errorf("invalid -sheet: %w", err)
		}
		proj.Sheet = model.Sheet{Width: r.Width, Height: r.Height}
	case *in.preset != "":
		inv, err := project.LoadInventory(a.inventoryPath())
		if err != nil {
			return model.Project{}, fmt.Errorf("failed to load inventory: %w", err)
		}
		preset := inv.FindByID(*in.preset)
		if preset == nil {
			preset = inv.FindByName(*in.preset)
		}
		if preset == nil {
			return model.Project{}, fmt.Errorf("no sheet preset named %q", *in.preset)
		}
		proj.Sheet = preset.Sheet()
	case !proj.Sheet.Valid():
		proj.Sheet = cfg.DefaultSheet()
	}
	proj.Sheet = proj.Sheet.Normalize()

	if *in.importPath != "" {
		res := importer.ImportFile(*in.importPath)
		for _, w := range res.Warnings {
			a.logger.Printf("%s: %s", *in.importPath, w)
		}
		for _, e := range res.Errors {
			a.logger.Printf("%s: %s", *in.importPath, e)
		}
		if len(res.Pieces) == 0 {
			return model.Project{}, fmt.Errorf("no pieces imported from %s", *in.importPath)
		}
		proj.Pieces = append(proj.Pieces, res.Pieces...)
	}
	proj.Pieces = append(proj.Pieces, in.pieces...)
	if len(proj.Pieces) == 0 {
		return model.Project{}, errors.New("no pieces given: use -piece WxH or -import FILE")
	}

	cfg.ApplyToSettings(&proj.Settings)
	if *in.population > 0 {
		proj.Settings.PopulationSize = *in.population
	}
	if *in.generations >= 0 {
		proj.Settings.Generations = *in.generations
		proj.Settings.DeriveGenerations = false
	}
	if *in.seed != 0 {
		proj.Settings.Seed = *in.seed
	}
	if *in.workers > 0 {
		proj.Settings.Workers = *in.workers
	}
	return proj, nil
}
