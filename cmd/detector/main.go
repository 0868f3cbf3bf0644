package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fakenews-detector/internal/clients"
	"fakenews-detector/internal/config"
	"fakenews-detector/internal/logger"
	"fakenews-detector/internal/models"
	"fakenews-detector/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:3001/api"

type options struct {
	apiURL  string
	verbose bool
	timeout time.Duration
	asJSON  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{apiURL: defaultAPIURL}
	if cfg, err := config.Load(); err == nil {
		opts.apiURL = cfg.APIBaseURL
	}

	rootCmd := &cobra.Command{
		Use:   "detector",
		Short: "Fake News Detector - AI-powered truth verification",
		Long: `Checks news articles, headlines and social media posts for signs of
misinformation using the analysis server.

Run without arguments to open the interactive form.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logger.SetLevel("DEBUG")
				logger.Log.SetOutput(cmd.ErrOrStderr())
				return
			}
			logger.Log.SetOutput(io.Discard)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", opts.apiURL, "analysis server base URL including /api (env DETECTOR_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "abort each analysis or health request after this long, in the form too (0 waits indefinitely)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze text once and print the verdict",
		Long: `Sends the text to the analysis server and prints the verdict.
Arguments are joined with spaces. With no arguments the text is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}
	analyzeCmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the raw analysis result as JSON")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the analysis server is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(cmd, opts)
		},
	}

	rootCmd.AddCommand(analyzeCmd, healthCmd)
	return rootCmd
}

// timeoutAnalyzer bounds every analysis the form starts
type timeoutAnalyzer struct {
	analyzer ui.Analyzer
	timeout  time.Duration
}

func (a timeoutAnalyzer) Analyze(ctx context.Context, text string) (*models.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return a.analyzer.Analyze(ctx, text)
}

func interactiveAnalyzer(client *clients.AnalysisClient, timeout time.Duration) ui.Analyzer {
	if timeout > 0 {
		return timeoutAnalyzer{analyzer: client, timeout: timeout}
	}
	return client
}

func runInteractive(cmd *cobra.Command, opts *options) error {
	client := clients.NewAnalysisClient(opts.apiURL)

	program := tea.NewProgram(
		ui.NewModel(cmd.Context(), interactiveAnalyzer(client, opts.timeout), client.BaseURL()),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	_, err := program.Run()
	return err
}

func runAnalyze(cmd *cobra.Command, opts *options, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	client := clients.NewAnalysisClient(opts.apiURL)
	result, err := client.Analyze(ctx, text)
	if err != nil {
		return errors.New(ui.ErrorMessage(err))
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	_, err = fmt.Fprint(out, ui.FormatResult(result))
	return err
}

func runHealth(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	client := clients.NewAnalysisClient(opts.apiURL)
	health, err := client.Health(ctx)
	if err != nil {
		return errors.New(ui.ErrorMessage(err))
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", health.Status, health.Message, client.BaseURL())
	return err
}
