// Command ls-starfield is a terminal UI for exploring a 3D star field and
// arranging owned stars into a constellation.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/stellar"
	"github.com/litescript/ls-starfield/internal/ui"
)

// CLI flags for headless modes
var (
	summaryMode  bool
	classifyName string
	convertPath  string
	outputPath   string
)

func main() {
	// Load .env if present, then environment config; flags override.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	catalogPath := flag.String("catalog", cfg.CatalogPath, "JSON star catalog (empty = built-in)")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", cfg.LogFile, "Log file (empty = discard in TUI mode)")
	flag.BoolVar(&summaryMode, "summary", false, "Print projected star table instead of TUI")
	flag.StringVar(&classifyName, "classify", "", "Print classification report for a named record")
	flag.StringVar(&convertPath, "convert", "", "Convert a raw CSV catalog to JSON")
	flag.StringVar(&outputPath, "out", "-", "Output path for -convert (use - for stdout)")
	flag.Parse()

	cfg.CatalogPath = *catalogPath
	cfg.LogLevel = *logLevel
	cfg.LogFile = *logFile

	headless := summaryMode || classifyName != "" || convertPath != ""

	logger := newLogger(cfg, headless)

	if headless {
		if err := runHeadless(cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// One-shot async catalog load; completion just updates state. A failed
	// load leaves the scene empty rather than halting.
	go func() {
		cat, err := loadCatalog(cfg, logger)
		p.Send(ui.CatalogLoadedMsg{Catalog: cat, Err: err})
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the logger: stderr for headless runs, the configured
// file (or discard) when the TUI owns the terminal.
func newLogger(cfg config.Config, headless bool) *logging.Logger {
	level := logging.ParseLevel(cfg.LogLevel)
	if headless {
		return logging.New(level)
	}
	if cfg.LogFile != "" {
		logger, err := logging.NewFile(cfg.LogFile, level)
		if err == nil {
			return logger
		}
		fmt.Fprintf(os.Stderr, "Warning: %v, discarding logs\n", err)
	}
	return logging.Discard()
}

// loadCatalog reads the configured catalog file, falling back to the
// built-in bright star catalog when none is configured.
func loadCatalog(cfg config.Config, logger *logging.Logger) (catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		logger.Info("using built-in catalog")
		return catalog.Builtin(), nil
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load %s: %w", cfg.CatalogPath, err)
	}
	logger.Info("loaded %d records from %s", len(cat.Records), cfg.CatalogPath)
	return cat, nil
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(cfg config.Config, logger *logging.Logger) error {
	if convertPath != "" {
		return runConvert(logger)
	}

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	if classifyName != "" {
		for _, rec := range cat.Records {
			if strings.EqualFold(rec.Name, classifyName) {
				stellar.WriteClassification(os.Stdout, rec)
				return nil
			}
		}
		return fmt.Errorf("no record named %q", classifyName)
	}

	// Summary: project the nearest records the galaxy scene would keep.
	projector := stellar.NewProjector(nil)
	stars := projector.Project(cat.NearestN(cfg.GalaxyCap))
	stellar.WriteSummary(os.Stdout, stars)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("\n%d stars (cap %d)\n", len(stars), cfg.GalaxyCap)
	}
	return nil
}

// runConvert converts a raw CSV catalog to the JSON scene format.
func runConvert(logger *logging.Logger) error {
	f, err := os.Open(convertPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", convertPath, err)
	}
	defer f.Close()

	cat, skipped, err := catalog.ConvertCSV(f)
	if err != nil {
		return err
	}
	if skipped > 0 {
		logger.Warn("skipped %d malformed rows", skipped)
	}
	logger.Info("converted %d records", len(cat.Records))

	if outputPath == "-" {
		return cat.Write(os.Stdout)
	}
	return cat.WriteFile(outputPath)
}
