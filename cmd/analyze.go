// File: cmd/analyze.go
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/forkdrift/api/schemas"
	"github.com/xkilldash9x/forkdrift/internal/analysis"
	"github.com/xkilldash9x/forkdrift/internal/config"
	"github.com/xkilldash9x/forkdrift/internal/gitrepo"
	"github.com/xkilldash9x/forkdrift/internal/observability"
	"github.com/xkilldash9x/forkdrift/internal/report"
)

// newAnalyzeCmd creates and configures the `analyze` command.
func newAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze [repo-path]",
		Short: "Analyzes fork divergence and prints a mergeup or newsletter report",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to their viper keys so command-line values
			// override config file and environment with the right
			// precedence.
			bindings := map[string]string{
				"analysis.downstream_ref": "downstream-ref",
				"analysis.upstream_ref":   "upstream-ref",
				"analysis.threshold":      "threshold",
				"analysis.author_domains": "author-domain",
				"analysis.set_areas":      "set-area",
				"analysis.set_prefixes":   "set-prefix",
				"report.format":           "format",
				"report.output":           "output",
				"report.commit_url_base":  "commit-url-base",
			}
			for key, flag := range bindings {
				if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			var cfg config.Config
			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to unmarshal config with flag overrides: %w", err)
			}

			repoPath := "."
			if len(args) > 0 {
				repoPath = args[0]
			}

			catalog := analysis.DefaultCatalog()
			overrides, err := parseOverrides(cfg.Analysis, catalog)
			if err != nil {
				return err
			}

			runID := uuid.New().String()
			logger.Info("Starting analysis",
				zap.String("run_id", runID),
				zap.String("repo", repoPath),
				zap.String("downstream_ref", cfg.Analysis.DownstreamRef),
				zap.String("upstream_ref", cfg.Analysis.UpstreamRef),
			)

			repo, err := gitrepo.Open(repoPath, logger)
			if err != nil {
				return err
			}

			analyzer := analysis.NewAnalyzer(repo, analysis.Options{
				Catalog:       catalog,
				Overrides:     overrides,
				Threshold:     cfg.Analysis.Threshold,
				AuthorDomains: cfg.Analysis.AuthorDomains,
				Logger:        logger,
			})

			result, err := analyzer.Analyze(cfg.Analysis.DownstreamRef, cfg.Analysis.UpstreamRef)
			if err != nil {
				var unknown *analysis.UnknownCommitsError
				if errors.As(err, &unknown) {
					printUnknownCommitHelp(cmd.ErrOrStderr(), unknown, catalog)
				}
				return err
			}

			renderer, err := report.New(cfg.Report.Format, report.Config{
				CommitURLBase: cfg.Report.CommitURLBase,
			})
			if err != nil {
				return err
			}

			text, err := renderer.Render(result)
			if err != nil {
				return err
			}
			if err := writeReport(text, cfg.Report.Output); err != nil {
				return err
			}

			logger.Info("Analysis complete",
				zap.String("run_id", runID),
				zap.Int("upstream_patches", result.TotalUpstream()),
				zap.Int("outstanding", len(result.Outstanding)),
				zap.Int("likely_merged", len(result.LikelyMerged)),
			)
			return nil
		},
	}

	analyzeCmd.Flags().String("downstream-ref", "", "Fork ref (commit-ish) to analyze from. (Overrides config/env)")
	analyzeCmd.Flags().String("upstream-ref", "", "Upstream ref (commit-ish) to analyze against. (Overrides config/env)")
	analyzeCmd.Flags().IntP("threshold", "t", 0, "Shortlog edit distance below which a patch counts as likely merged. (Overrides config/env)")
	analyzeCmd.Flags().StringSlice("author-domain", nil, "Email domain suffix identifying downstream contributors. Repeatable.")
	analyzeCmd.Flags().StringSliceP("set-area", "A", nil, "Manual sha:Area classification. Use the areas command to list areas. Repeatable.")
	analyzeCmd.Flags().StringSlice("set-prefix", nil, "Manual prefix:Area classification. Repeatable.")
	analyzeCmd.Flags().StringP("format", "f", "", "Report format (text, markdown, json). (Overrides config/env)")
	analyzeCmd.Flags().StringP("output", "o", "", "Output file path. If unset, the report goes to stdout.")
	analyzeCmd.Flags().String("commit-url-base", "", "URL prefix for commit links in markdown output.")

	return analyzeCmd
}

// parseOverrides turns the sha:Area and prefix:Area arguments into
// override maps, rejecting areas the catalog does not know.
func parseOverrides(cfg config.AnalysisConfig, catalog *analysis.Catalog) (analysis.Overrides, error) {
	overrides := analysis.Overrides{
		ByHash:   make(map[string]schemas.Area),
		ByPrefix: make(map[string]schemas.Area),
	}
	fill := func(specs []string, dst map[string]schemas.Area) error {
		for _, spec := range specs {
			key, areaName, err := config.ParseAreaSpec(spec)
			if err != nil {
				return err
			}
			area := schemas.Area(areaName)
			if !catalog.Has(area) {
				return fmt.Errorf("unknown area %q in %q (choices: %s)",
					areaName, spec, joinAreas(catalog))
			}
			dst[key] = area
		}
		return nil
	}
	if err := fill(cfg.SetAreas, overrides.ByHash); err != nil {
		return analysis.Overrides{}, err
	}
	if err := fill(cfg.SetPrefixes, overrides.ByPrefix); err != nil {
		return analysis.Overrides{}, err
	}
	return overrides, nil
}

// printUnknownCommitHelp tells the user how to fix every unclassified
// commit in one rerun.
func printUnknownCommitHelp(w io.Writer, e *analysis.UnknownCommitsError, catalog *analysis.Catalog) {
	fmt.Fprintln(w, "Error: can't build the report. The following commits have unknown areas:")
	fmt.Fprintln(w)
	for _, c := range e.Commits {
		fmt.Fprintf(w, "- %s %s\n", c.ShortHash(), c.Shortlog())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "You can manually specify areas like so:")
	fmt.Fprintln(w)
	fmt.Fprint(w, "  forkdrift analyze")
	for _, c := range e.Commits {
		fmt.Fprintf(w, " --set-area %s:AREA", c.ShortHash())
	}
	fmt.Fprintln(w, " ...")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Where each AREA is taken from the list: %s\n", joinAreas(catalog))
}

func joinAreas(catalog *analysis.Catalog) string {
	areas := catalog.Areas()
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

// writeReport sends the rendered text to the output path, or stdout when
// none is configured.
func writeReport(text, outputPath string) error {
	if outputPath == "" || outputPath == "stdout" {
		_, err := fmt.Fprintln(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", outputPath, err)
	}
	return nil
}
