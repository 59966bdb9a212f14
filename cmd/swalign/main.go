// Command swalign computes optimal local alignments of two FASTA
// sequences with the Smith-Waterman algorithm.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/swalign/align"
	"github.com/katalvlaran/swalign/fasta"
	"github.com/katalvlaran/swalign/scoring"
)

var (
	// Flags, mirrored by the YAML config (see config.go).
	queryPath   string
	subjectPath string
	queryName   string
	subjectName string
	matrixPath  string
	match       int
	mismatch    int
	gapCost     int
	gapMode     string
	modeFlag    string
	workers     int
	width       int
	outPath     string
	configPath  string
	verbose     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "swalign",
	Short: "Optimal local alignment of two sequences (Smith-Waterman)",
	Long: `swalign aligns two FASTA sequences locally, reporting every
co-optimal alignment (or just one with --mode one) in BLAST-style blocks.

Scoring comes either from a substitution-table file (--matrix, the usual
BLOSUM/PAM layout) or from a uniform --match/--mismatch scheme. Gaps cost
--gap per column (--gap-mode linear) or --gap per gap event regardless of
length (--gap-mode constant).

Example:
  swalign --query q.fa --subject s.fa --match 3 --mismatch -3 --gap 2`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAlign,
}

// scoreCmd reports only the optimal score, using the rolling-row
// evaluation that skips the trace matrix entirely.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print only the optimal local-alignment score",
	Long: `Computes the optimal local-alignment score without reconstructing
any alignment, keeping two matrix rows in memory instead of the full
matrix. Useful for screening long sequences.`,
	RunE: runScore,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&queryPath, "query", "", "FASTA file with the query sequence (required)")
	pf.StringVar(&subjectPath, "subject", "", "FASTA file with the subject sequence (required)")
	pf.StringVar(&queryName, "query-name", "", "override the query's FASTA header name")
	pf.StringVar(&subjectName, "subject-name", "", "override the subject's FASTA header name")
	pf.StringVar(&matrixPath, "matrix", "", "substitution-table file (BLOSUM/PAM layout); overrides --match/--mismatch")
	pf.IntVar(&match, "match", 3, "score for identical symbols (uniform scheme)")
	pf.IntVar(&mismatch, "mismatch", -3, "score for differing symbols (uniform scheme)")
	pf.IntVar(&gapCost, "gap", 2, "gap cost (sign is ignored)")
	pf.StringVar(&gapMode, "gap-mode", "linear", "gap policy: linear (per column) or constant (per gap event)")
	pf.StringVar(&configPath, "config", "", "YAML file with defaults for any of the above")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	f := rootCmd.Flags()
	f.StringVar(&modeFlag, "mode", "all", "report all co-optimal alignments or just one (all|one)")
	f.IntVar(&workers, "workers", 1, "concurrent traceback workers when several cells tie for the maximum")
	f.IntVar(&width, "width", 60, "output block width in columns")
	f.StringVar(&outPath, "out", "", "also write the rendered alignments to this file")

	rootCmd.AddCommand(scoreCmd)
}

// resolveConfig folds the config file (if any) and explicit flags into
// one effective configuration.
func resolveConfig(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("query", func() { cfg.Query = queryPath })
	set("subject", func() { cfg.Subject = subjectPath })
	set("query-name", func() { cfg.QueryName = queryName })
	set("subject-name", func() { cfg.SubjectName = subjectName })
	set("matrix", func() { cfg.Matrix = matrixPath })
	set("match", func() { cfg.Match = match })
	set("mismatch", func() { cfg.Mismatch = mismatch })
	set("gap", func() { cfg.Gap = gapCost })
	set("gap-mode", func() { cfg.GapMode = gapMode })
	set("mode", func() { cfg.Mode = modeFlag })
	set("workers", func() { cfg.Workers = workers })
	set("width", func() { cfg.Width = width })
	set("out", func() { cfg.Out = outPath })

	if cfg.Query == "" || cfg.Subject == "" {
		return cfg, fmt.Errorf("--query and --subject are required")
	}
	return cfg, nil
}

// loadSequence reads the first FASTA record from path, optionally
// renaming it.
func loadSequence(path, nameOverride string) (align.Sequence, error) {
	records, err := fasta.ReadFile(path)
	if err != nil {
		return align.Sequence{}, err
	}
	name := records[0].Name
	if nameOverride != "" {
		name = nameOverride
	}
	return align.NewSequence(name, records[0].Seq)
}

// buildModel assembles the scoring model from the effective config: a
// substitution file when given, a uniform scheme over the observed
// symbols otherwise.
func buildModel(cfg config, query, subject align.Sequence) (*scoring.Model, error) {
	var gap scoring.GapPolicy
	switch cfg.GapMode {
	case "linear":
		gap = scoring.LinearGap(cfg.Gap)
	case "constant":
		gap = scoring.ConstantGap(cfg.Gap)
	default:
		return nil, fmt.Errorf("unknown gap mode %q (want linear or constant)", cfg.GapMode)
	}
	if cfg.Matrix != "" {
		table, err := scoring.ParseTableFile(cfg.Matrix)
		if err != nil {
			return nil, err
		}
		return scoring.New(table, gap)
	}
	return scoring.Uniform(cfg.Match, cfg.Mismatch, query.Seq+subject.Seq, gap), nil
}

func loadInputs(cmd *cobra.Command) (config, align.Sequence, align.Sequence, *scoring.Model, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return cfg, align.Sequence{}, align.Sequence{}, nil, err
	}
	query, err := loadSequence(cfg.Query, cfg.QueryName)
	if err != nil {
		return cfg, align.Sequence{}, align.Sequence{}, nil, err
	}
	subject, err := loadSequence(cfg.Subject, cfg.SubjectName)
	if err != nil {
		return cfg, align.Sequence{}, align.Sequence{}, nil, err
	}
	model, err := buildModel(cfg, query, subject)
	if err != nil {
		return cfg, align.Sequence{}, align.Sequence{}, nil, err
	}
	logger.Debug("inputs loaded",
		zap.String("query", query.Name), zap.Int("query_len", query.Len()),
		zap.String("subject", subject.Name), zap.Int("subject_len", subject.Len()),
		zap.String("gap_mode", cfg.GapMode))

	return cfg, query, subject, model, nil
}

func runAlign(cmd *cobra.Command, args []string) error {
	cfg, query, subject, model, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	opts := align.DefaultOptions()
	switch cfg.Mode {
	case "all":
		opts.Mode = align.ModeAll
	case "one":
		opts.Mode = align.ModeOne
	default:
		return fmt.Errorf("unknown mode %q (want all or one)", cfg.Mode)
	}
	opts.Workers = cfg.Workers

	start := time.Now()
	alignments, err := align.Align(query, subject, model, &opts)
	if err != nil {
		return err
	}
	logger.Info("alignment finished",
		zap.Int("alignments", len(alignments)),
		zap.Duration("elapsed", time.Since(start)))

	if len(alignments) == 0 {
		fmt.Println("No local alignment: no symbol pair scores above zero.")
		return nil
	}

	out := renderAlignments(alignments, cfg.Width)
	fmt.Print(out)
	if cfg.Out != "" {
		if err = os.WriteFile(cfg.Out, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Out, err)
		}
		logger.Info("results saved", zap.String("path", cfg.Out))
	}
	return nil
}

func runScore(cmd *cobra.Command, args []string) error {
	_, query, subject, model, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	score, err := align.MaxScore(query, subject, model)
	if err != nil {
		return err
	}
	logger.Debug("score finished", zap.Duration("elapsed", time.Since(start)))
	fmt.Println(score)
	return nil
}

// renderAlignments formats every alignment with a numbered header block.
func renderAlignments(alignments []align.Alignment, width int) string {
	var b strings.Builder
	for n, al := range alignments {
		fmt.Fprintf(&b, "******* Query: %s *******\n", al.QueryName)
		fmt.Fprintf(&b, "******* Subject: %s *******\n", al.SubjectName)
		fmt.Fprintf(&b, "******* ALIGNMENT NUMBER: %d, SCORE: %d *******\n", n+1, al.Score)
		b.WriteString(al.Text(width))
		b.WriteString("\n")
	}
	return b.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
