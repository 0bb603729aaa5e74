package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	rdf2go "github.com/deiu/rdf2go"
	"github.com/spf13/cobra"

	"github.com/c360studio/semshape/config"
	"github.com/c360studio/semshape/engine"
	"github.com/c360studio/semshape/graph"
	"github.com/c360studio/semshape/report"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semshape"
)

// errViolations signals a clean run whose report does not conform. The
// process exits 1 for it, 2 for everything else that goes wrong.
var errViolations = errors.New("validation produced violations")

type validateFlags struct {
	shapesPath string
	dataGlobs  []string
	format     string
	failFast   bool
	watch      bool
	configPath string
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semshape",
		Short: "Shape validation for knowledge graphs",
		Long: `Semshape checks RDF data graphs against SHACL shape schemas.

It reads a shapes graph, selects the focus nodes each shape targets,
runs every constraint against them in parallel, and reports each
violation with the focus node, path, and constraint that produced it.

Exit codes: 0 when the data conforms, 1 when violations were found,
2 when validation itself failed.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(validateCmd())

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func validateCmd() *cobra.Command {
	var flags validateFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate data graphs against a shapes graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.shapesPath, "shapes", "", "Shapes graph file (Turtle)")
	cmd.Flags().StringArrayVar(&flags.dataGlobs, "data", nil, "Data graph files or glob patterns (e.g. 'graphs/**/*.ttl'), repeatable")
	cmd.Flags().StringVar(&flags.format, "format", "", "Report format (text, json)")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "Stop at the first violation")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "Re-validate when shapes or data files change")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	_ = cmd.MarkFlagRequired("shapes")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runValidate(ctx context.Context, flags validateFlags) error {
	cfg, err := config.NewLoader(slog.Default()).Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	// Flags override config
	if flags.failFast {
		cfg.Validation.FailFast = true
	}
	if flags.format != "" {
		switch flags.format {
		case "text", "json":
			cfg.Output.Format = flags.format
		default:
			return fmt.Errorf("unknown format %q (want text or json)", flags.format)
		}
	}

	opts := cfg.EngineOptions()
	opts.Logger = logger
	eng := engine.New(opts)

	dataFiles, err := expandGlobs(flags.dataGlobs)
	if err != nil {
		return err
	}
	if len(dataFiles) == 0 {
		return fmt.Errorf("no data files match %v", flags.dataGlobs)
	}

	run := func() error {
		return validateOnce(ctx, eng, flags.shapesPath, dataFiles, cfg.Output.Format, logger)
	}

	if flags.watch {
		return watchAndValidate(ctx, flags.shapesPath, dataFiles, logger, run)
	}
	return run()
}

// validateOnce parses the shapes graph, loads and merges the data files,
// runs validation and renders the report to stdout.
func validateOnce(ctx context.Context, eng *engine.Engine, shapesPath string, dataFiles []string, format string, logger *slog.Logger) error {
	shapes, err := loadGraph(shapesPath)
	if err != nil {
		return fmt.Errorf("load shapes graph: %w", err)
	}

	model, err := eng.Parse(shapes)
	if err != nil {
		return err
	}
	logger.Info("Parsed shapes graph",
		slog.String("file", shapesPath),
		slog.Int("shapes", len(model)))

	data, err := loadData(dataFiles)
	if err != nil {
		return err
	}
	logger.Info("Loaded data graphs",
		slog.Int("files", len(dataFiles)),
		slog.Int("triples", data.Len()))

	rep, err := eng.ValidateModel(ctx, data, model)
	if err != nil {
		return err
	}

	if err := renderReport(os.Stdout, rep, format); err != nil {
		return err
	}
	if !rep.Conforms() {
		return errViolations
	}
	return nil
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}

// expandGlobs resolves each argument as a doublestar pattern, falling back
// to a literal path when it contains no glob metacharacters. The combined
// result is deduplicated and sorted.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		if matches == nil && !strings.ContainsAny(pattern, "*?[{") {
			// Literal path: let the loader report a useful error later
			matches = []string{pattern}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// mimeForPath maps a file extension to the serialization rdf2go parses.
func mimeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonld", ".json":
		return "application/ld+json"
	default:
		return "text/turtle"
	}
}

func loadGraph(path string) (*graph.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g := rdf2go.NewGraph("")
	if err := g.Parse(f, mimeForPath(path)); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return graph.NewStore(g), nil
}

// loadData parses every data file and merges the triples into one store.
func loadData(paths []string) (*graph.Store, error) {
	var triples []*rdf2go.Triple
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("load data graph: %w", err)
		}
		g := rdf2go.NewGraph("")
		err = g.Parse(f, mimeForPath(path))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for triple := range g.IterTriples() {
			triples = append(triples, triple)
		}
	}
	return graph.FromTriples(triples), nil
}

func renderReport(w io.Writer, rep *report.Report, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	renderText(w, rep)
	return nil
}

func renderText(w io.Writer, rep *report.Report) {
	for _, res := range rep.Results() {
		path := ""
		if res.Path != nil {
			path = " path " + graph.Key(res.Path)
		}
		fmt.Fprintf(w, "%s: focus %s shape %s%s: %s\n",
			res.Severity, graph.Key(res.FocusNode), graph.Key(res.ShapeID), path, res.Message)
		for _, k := range sortedKeys(res.Details) {
			fmt.Fprintf(w, "  %s: %s\n", k, res.Details[k])
		}
	}

	status := "conforms"
	if !rep.Conforms() {
		status = "does not conform"
	}
	suffix := ""
	if rep.Truncated() {
		suffix = " (truncated)"
	}
	fmt.Fprintf(w, "%s: %d result(s)%s\n", status, rep.Len(), suffix)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
