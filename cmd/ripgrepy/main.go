// Package main provides the ripgrepy CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/richinex/ripgrepy/cli"
	"github.com/richinex/ripgrepy/config"
	"github.com/richinex/ripgrepy/storage"
)

var (
	// Global flags
	configPath string
	noColor    bool
	verbose    bool
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "ripgrepy",
		Short: "Build, run and interpret ripgrep searches",
		Long: `A CLI around ripgrep (rg) with validated options and structured results.

Options are given by long name with --opt, checked against the option
registry, and rendered in order. Structured views run rg in JSON mode:
- grouped: matches grouped by file (default)
- records: every JSON record, one per line
- json: the grouped mapping as JSON
- matches: the raw match records as a JSON array
- raw: rg's own output, unchanged`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Settings file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show the rg command line before running it")

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(optionsCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(toolsCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if errors.Is(err, cli.ErrNoMatch) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(2)
	}
}

func loadSettings() (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func searchCmd() *cobra.Command {
	var opts []string
	var view string
	var record bool
	var timeout time.Duration
	var binary string

	cmd := &cobra.Command{
		Use:   "search <pattern> [path]",
		Short: "Run a ripgrep search",
		Long: `Run a ripgrep search and print the selected view.

Examples:
  ripgrepy search TODO src --opt glob='*.go' --opt max-count=5
  ripgrepy search -v --view records --opt ignore-case error logs
  ripgrepy search --record --opt type=go 'func main'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			path := "."
			if len(args) == 2 {
				path = args[1]
			}
			o := cli.DefaultOptions()
			o.View = view
			o.Opts = opts
			o.Record = record
			o.Timeout = timeout
			o.Binary = binary
			o.Color = !noColor
			o.Verbose = verbose
			o.Out = cmd.OutOrStdout()
			return cli.Search(cmd.Context(), settings, args[0], path, o)
		},
	}

	cmd.Flags().StringArrayVarP(&opts, "opt", "o", nil, "ripgrep option as name[=value] (repeatable, applied in order)")
	cmd.Flags().StringVar(&view, "view", cli.ViewGrouped, "Output view: grouped, records, json, matches or raw")
	cmd.Flags().BoolVar(&record, "record", false, "Record the run in the history database")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Kill rg after this long (e.g. 30s); 0 uses the configured timeout")
	cmd.Flags().StringVar(&binary, "rg", "", "Path to the rg executable")

	return cmd
}

func optionsCmd() *cobra.Command {
	var group string
	var verboseOptions bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the ripgrep options accepted by --opt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.ListOptions(cmd.OutOrStdout(), group, verboseOptions)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Only list one exclusion group (e.g. case, context, output)")
	cmd.Flags().BoolVarP(&verboseOptions, "verbose", "V", false, "Show every flag spelling")

	return cmd
}

func historyCmd() *cobra.Command {
	var limit int
	var del bool
	var view string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "List recorded runs, or show or delete one",
		Long: `List runs recorded with "search --record".

With an id, the stored output is interpreted again without running rg:
structured runs default to the grouped view, plain runs to raw.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = settings.History.Path
			}
			store, err := storage.OpenSqlite(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open history: %w", err)
			}
			defer store.Close()

			o := cli.HistoryOptions{Limit: limit, Delete: del, View: view, Color: !noColor}
			if len(args) == 1 {
				o.ID = args[0]
			}
			return cli.History(cmd.Context(), cmd.OutOrStdout(), store, o)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 lists all)")
	cmd.Flags().BoolVar(&del, "delete", false, "Delete the run with the given id")
	cmd.Flags().StringVar(&view, "view", "", "Output view when showing a run")
	cmd.Flags().StringVar(&dbPath, "db", "", "History database path (default: configured path)")

	return cmd
}

func toolsCmd() *cobra.Command {
	var verboseTools bool

	cmd := &cobra.Command{
		Use:   "tools [name [json-args]]",
		Short: "List the search tools, or call one with JSON arguments",
		Long: `Without arguments, list the tools offered to tool-calling clients.
With a tool name, call it and print the JSON result:

  ripgrepy tools ripgrep '{"pattern":"TODO","glob":["*.go"]}'
  ripgrepy tools ripgrep_options '{"group":"case"}'`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cli.ListTools(cmd.OutOrStdout(), verboseTools)
			}
			var raw string
			if len(args) == 2 {
				raw = args[1]
			}
			return cli.CallTool(cmd.Context(), cmd.OutOrStdout(), args[0], raw)
		},
	}

	cmd.Flags().BoolVarP(&verboseTools, "verbose", "V", false, "Show tool parameters")

	return cmd
}
