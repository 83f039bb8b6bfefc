// Package cmd — analyze command.
// Runs the batch pipeline over the given files and writes one rendered
// output per document: analyze → render → write.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/deckparse/batch"
	"github.com/gaurav-prasanna/deckparse/config"
	"github.com/gaurav-prasanna/deckparse/core"
	"github.com/gaurav-prasanna/deckparse/core/analyze"
	"github.com/gaurav-prasanna/deckparse/core/output"
	"github.com/gaurav-prasanna/deckparse/core/render"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagJSON      bool
	flagMarkdown  bool
	flagPDF       bool
	flagOutputDir string
	flagConfig    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Analyze HTML files and write the inferred navigation model",
	Long: `Analyze reads each HTML file, infers its table of contents and content
sections, reconciles them, and writes the result in the chosen format.

Examples:
  deckparse analyze deck.html --json
  deckparse analyze slides/*.html --markdown --output_dir ./out
  deckparse analyze deck.html --pdf --config deckparse.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output format flags (mutually exclusive).
	analyzeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON (default)")
	analyzeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown document")
	analyzeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF outline")

	analyzeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	analyzeCmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	analyzer := analyze.New(analyze.Config{
		Logger:               log,
		ExtraTocPatterns:     toPatterns(cfg.ExtraTocPatterns),
		ExtraSectionPatterns: toPatterns(cfg.ExtraSectionPatterns),
	})

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	runner := batch.NewRunner(analyzer, log)
	results := runner.Run(args)

	var errCount int
	for _, res := range results {
		if !res.Success {
			fmt.Fprintf(os.Stderr, "✗ %s: %s\n", res.Path, res.Message)
			errCount++
			continue
		}

		data, err := renderer.Render(res.Result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: render: %v\n", res.Path, err)
			errCount++
			continue
		}

		path, err := writer.Write(res.Path, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
			errCount++
			continue
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d files failed", errCount, len(results))
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
// JSON is the default when no format is chosen.
func selectRenderer() (core.Renderer, error) {
	formatCount := 0
	for _, set := range []bool{flagJSON, flagMarkdown, flagPDF} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewJSONRenderer(), nil
	}
}

func toPatterns(pcs []config.PatternConfig) []analyze.Pattern {
	patterns := make([]analyze.Pattern, 0, len(pcs))
	for _, pc := range pcs {
		patterns = append(patterns, analyze.Pattern{Name: pc.Name, Selector: pc.Selector})
	}
	return patterns
}
