package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/keycalc"
	"github.com/zephyrtronium/keycalc/internal/config"
	"github.com/zephyrtronium/keycalc/internal/logging"
)

var (
	// Global flags
	cfgPath string
	verbose bool
	format  string

	cfg    *config.Config
	logger *zap.Logger
	ev     *keycalc.Evaluator
)

var rootCmd = &cobra.Command{
	Use:   "keycalc [expression...]",
	Short: "Evaluate calculator expressions",
	Long: `keycalc evaluates expressions the way a pocket calculator's = key does.

An expression is one function applied to one number, like √16, sin90, or 5!,
or one binary operator between two numbers, like 6/3 or 2^10. Angles are in
degrees. With no arguments, each line of the input is one expression.
Put -- before an expression that starts with a minus sign.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runEval,
}

var inname string

var keysCmd = &cobra.Command{
	Use:   "keys label...",
	Short: "Press keypad keys in order and print the display",
	Long: `keys replays key labels from an empty display, e.g.

  keycalc keys 1 2 + 3 =

prints 15.0. Labels are the keypad's: digits, ".", + - * / ^ √ !, the function
keys sin cos tan cot asin acos atan ln, π, c, del, and =.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKeys,
}

var trace bool

var fnCmd = &cobra.Command{
	Use:   "fn name value",
	Short: "Apply a function key to a value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), ev.ApplyImmediate(args[0], args[1]))
		return nil
	},
}

var padCmd = &cobra.Command{
	Use:   "pad",
	Short: "Run the interactive keypad",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(newPadModel(ev), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("keypad: %w", err)
		}
		return nil
	},
}

var writePath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `config prints the configuration after defaults, the --config file,
KEYCALC_* environment variables, and flags are applied. With --write, it saves
that configuration to a file instead, ready to pass back with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&format, "fmt", "", `result format: "display" or a fmt verb like %g (default from config)`)
	rootCmd.Flags().StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	keysCmd.Flags().BoolVar(&trace, "trace", false, "print the display after every key")
	configCmd.Flags().StringVar(&writePath, "write", "", "save the configuration to this file")
	rootCmd.AddCommand(keysCmd, fnCmd, padCmd, configCmd)
}

// setup loads configuration and builds the logger and evaluator shared by all
// commands.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if format != "" {
		cfg.Output.Format = format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if verbose {
		cfg.Log.Level = zapcore.DebugLevel.String()
	}
	logger, err = logging.New(cfg.Log)
	if err != nil {
		return err
	}
	ev = keycalc.NewEvaluator(
		keycalc.WithLogger(logger.Named("eval")),
		keycalc.FactorialLimit(cfg.Eval.MaxFactorial),
	)
	logger.Debug("configured",
		zap.String("config", cfgPath),
		zap.String("format", cfg.Output.Format),
		zap.Int("max_factorial", cfg.Eval.MaxFactorial),
	)
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, arg := range args {
			fmt.Fprintln(out, result(arg))
		}
		return nil
	}
	in, closer, err := infile(inname, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closer.Close()
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(out, result(line))
	}
	if err := scan.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// result evaluates an expression and formats it per the output config.
// Errors are results too: they print as the display would show them.
func result(expr string) string {
	if cfg.Output.Format == config.DisplayFormat {
		return ev.Evaluate(expr)
	}
	r, err := ev.Compute(expr)
	if err != nil {
		return keycalc.Message(err)
	}
	return fmt.Sprintf(cfg.Output.Format, r)
}

func runKeys(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var d keycalc.Display
	for _, label := range args {
		d = ev.Press(d, label)
		if trace {
			fmt.Fprintf(out, "%-5s %s\n", label, d)
		}
	}
	if !trace {
		fmt.Fprintln(out, d)
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if writePath != "" {
		if err := cfg.Save(writePath); err != nil {
			return err
		}
		logger.Info("saved config", zap.String("path", writePath))
		return nil
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func infile(inname string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if inname == "" || inname == "-" {
		return stdin, io.NopCloser(nil), nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, f, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
