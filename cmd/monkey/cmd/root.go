package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/monkey/foundation/core/error"
	mdwlog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/foundation/monkey"
	"github.com/msto63/monkey/internal/render"
	"github.com/msto63/monkey/pkg/core/config"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	output    string

	appConfig *config.Config
	appLogger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Monkey language front end",
	Long: `monkey lexes and parses Monkey source code.

Commands:
  lex      - print the token stream
  parse    - print the syntax tree and any diagnostics
  version  - print build information

Source is read from a file argument, from --expr, or from stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Errors other than syntax diagnostics,
// which have already been printed with the result, are written to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Code().ExitCode()
	}
	// Flag and argument errors from cobra
	return 2
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MONKEY_CONFIG or ./monkey.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, text, console, logfmt)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format (text, json, yaml)")
}

// setup loads the configuration and builds the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if logFormat != "" {
		cfg.General.LogFormat = logFormat
	}
	if output != "" {
		cfg.Output.Format = output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	appConfig = cfg
	appLogger = logger

	appLogger.Debug("Configuration loaded", mdwlog.Fields{
		"path":    cfg.Path(),
		"command": cmd.Name(),
	})
	return nil
}

func newFrontend() *monkey.Frontend {
	return monkey.NewFrontend(monkey.Options{
		Logger:         appLogger,
		MaxInputLength: appConfig.Parser.MaxInputLength,
	})
}

func newRenderer(w io.Writer) *render.Renderer {
	// Both values were checked by config.Validate
	format, _ := render.ParseFormat(appConfig.Output.Format)
	return render.New(w, format, render.ColorMode(appConfig.Output.Color))
}

// readSource returns inline source, the named file, or all of stdin
func readSource(cmd *cobra.Command, args []string, inline string) (string, error) {
	if inline != "" {
		return inline, nil
	}

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			code := mdwerror.CodeIO
			if os.IsNotExist(err) {
				code = mdwerror.CodeNotFound
			}
			return "", mdwerror.Wrap(err, "cannot read source").
				WithCode(code).
				WithOperation("readSource").
				WithDetail("path", args[0])
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mdwerror.Wrap(err, "cannot read stdin").
			WithCode(mdwerror.CodeIO).
			WithOperation("readSource")
	}
	return string(data), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
