package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/finscope-dev/finscope/internal/config"
	"github.com/finscope-dev/finscope/internal/interaction"
	"github.com/finscope-dev/finscope/internal/logger"
	"github.com/finscope-dev/finscope/internal/mapping"
	"github.com/finscope-dev/finscope/internal/model"
	"github.com/finscope-dev/finscope/internal/parser"
	"github.com/finscope-dev/finscope/internal/process"
	"github.com/finscope-dev/finscope/internal/report"
	"github.com/finscope-dev/finscope/internal/statement"
	"github.com/finscope-dev/finscope/internal/strategy"
	"github.com/finscope-dev/finscope/internal/summary"
	"github.com/finscope-dev/finscope/internal/writer"
)

func newImportCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import [directory]",
		Short: "Parse, categorize, and summarize statements from import/",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(dataDirArg(args))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runImport(cmd.Context(), dir, mode, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "categorization mode: auto or prompt (overrides config)")
	return cmd
}

func runImport(ctx context.Context, dir, modeOverride string, in io.Reader, out io.Writer) error {
	log := logger.New()

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return err
	}
	mode := cfg.Categorizer.Mode
	if modeOverride != "" {
		mode = modeOverride
	}

	store := mapping.NewStore(mapping.NewJSONFile(filepath.Join(dir, cfg.MappingFile)))
	if err := store.Load(); err != nil {
		return err
	}
	log.Info().Int("mappings", store.Len()).Msg("loaded merchant mappings")

	files, err := statement.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "nothing to import")
		return nil
	}

	registry := parser.DefaultRegistry()
	run := &report.Run{}
	var txns []model.Transaction
	for _, file := range files {
		st := parseStatement(cfg, registry, file, log)
		run.Add(st.report)
		txns = append(txns, st.txns...)
	}

	strat, err := buildStrategy(cfg, mode, in, out)
	if err != nil {
		return err
	}

	res := process.Process(ctx, txns, store, strat)
	for _, perr := range res.Errors {
		log.Warn().Err(perr).Msg("categorization failed")
	}
	run.Learned = len(res.Learned)
	run.Unresolved = len(res.Unresolved)
	run.Cancelled = res.Cancelled

	// Every committed Set is individually valid, so learned mappings are
	// flushed even when the run stops early.
	if err := store.Flush(); err != nil {
		return err
	}

	run.Render(out)

	if len(res.Unresolved) > 0 {
		if res.Cancelled {
			return nil
		}
		return fmt.Errorf("summary skipped: %d transactions unresolved", len(res.Unresolved))
	}

	data, err := summary.Summarize(res.Categorized)
	if err != nil {
		return err
	}
	if err := writeSummary(filepath.Join(dir, cfg.SummaryFile), data); err != nil {
		return err
	}
	log.Info().Int("rows", len(data.Rows)).Str("file", cfg.SummaryFile).Msg("summary written")

	for _, st := range run.Statements {
		if st.Err != nil {
			continue
		}
		if err := statement.MarkProcessed(dir, st.File); err != nil {
			return err
		}
	}
	return nil
}

type parsedStatement struct {
	report report.Statement
	txns   []model.Transaction
}

// parseStatement parses one import file. Statement-level failures (unknown
// bank, unrecognized format, unreadable file) skip the file; row-level
// failures skip only the row.
func parseStatement(cfg *config.Config, registry *parser.Registry, file statement.FileInfo, log zerolog.Logger) parsedStatement {
	rep := report.Statement{File: file.Name}

	bank, ok := cfg.BankForFile(file.Name)
	if !ok {
		rep.Err = fmt.Errorf("no configured bank matches %q", file.Name)
		return parsedStatement{report: rep}
	}
	rep.Bank = bank

	p, err := registry.Get(bank)
	if err != nil {
		rep.Err = err
		return parsedStatement{report: rep}
	}

	skipRows := p.SkipRows()
	if override, ok := cfg.SkipRowsFor(bank); ok {
		skipRows = override
	}

	f, err := os.Open(file.Path)
	if err != nil {
		rep.Err = err
		return parsedStatement{report: rep}
	}
	defer f.Close()

	st, err := statement.ReadCSV(f, skipRows)
	if err != nil {
		rep.Err = err
		return parsedStatement{report: rep}
	}

	txns, rowErrs, err := p.Parse(st)
	if err != nil {
		rep.Err = err
		return parsedStatement{report: rep}
	}
	rep.ParsedRows = len(txns)
	rep.RowErrors = rowErrs
	log.Info().Str("file", file.Name).Str("bank", bank).
		Int("parsed", len(txns)).Int("skipped", len(rowErrs)).
		Msg("parsed statement")
	return parsedStatement{report: rep, txns: txns}
}

// buildStrategy picks the resolution strategy for the run.
func buildStrategy(cfg *config.Config, mode string, in io.Reader, out io.Writer) (strategy.Strategy, error) {
	switch mode {
	case config.ModeAuto:
		auto := strategy.NewAuto(cfg.Categorizer.LearnFallbacks)
		if cfg.Categorizer.FallbackCategory != "" {
			auto.Fallback = cfg.Categorizer.FallbackCategory
		}
		return auto, nil
	case config.ModePrompt:
		prompt := strategy.NewUserPrompt(interaction.NewConsole(in, out))
		if cfg.Categorizer.FallbackCategory != "" {
			prompt.Fallback.Fallback = cfg.Categorizer.FallbackCategory
		}
		return prompt, nil
	default:
		return nil, fmt.Errorf("unknown categorization mode %q", mode)
	}
}

func writeSummary(path string, data *summary.Data) error {
	w, err := writer.ForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	defer f.Close()

	return w.Write(f, data)
}
