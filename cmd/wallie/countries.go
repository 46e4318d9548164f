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

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wallie/wallie/internal/config"
	"github.com/wallie/wallie/internal/countries"
	"github.com/wallie/wallie/internal/logging"
	"github.com/wallie/wallie/internal/ui"
)

// suggestionLimit caps "did you mean" output
const suggestionLimit = 3

// Countries command flags
var (
	outputFormat string
	countryCode  string
)

func init() {
	countriesCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format (table, json, yaml)")
	countriesCmd.Flags().StringVar(&countryCode, "code", "", "Print only the country with this region code")

	countriesCmd.AddCommand(findCmd)
	rootCmd.AddCommand(countriesCmd)
}

// countriesCmd prints the country directory
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Print the country calling code directory",
	Long: `Fetch the country directory once and print it.

This is the same request the sign-up screen makes when it opens. Unlike the
screen, a failed fetch is reported and the command exits non-zero.`,
	Example: `  # Table of every country
  wallie countries

  # One country
  wallie countries --code FR

  # JSON output for scripting
  wallie countries --format json`,
	Args: cobra.NoArgs,
	RunE: runCountries,
}

// findCmd looks countries up by code or name
var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find countries by region code or name",
	Long: `Find countries whose region code equals the query or whose name
contains it, ignoring case. When nothing matches, the closest names are
suggested.`,
	Example: `  wallie countries find fr
  wallie countries find "united"
  wallie countries find germny`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runCountries(cmd *cobra.Command, args []string) error {
	if err := checkFormat(outputFormat); err != nil {
		return err
	}

	cfg, list, err := fetchDirectory(cmd)
	if err != nil {
		return err
	}

	if countryCode != "" {
		i := countries.IndexOf(list, strings.ToUpper(countryCode))
		if i < 0 {
			return notFound(cmd.ErrOrStderr(), list, countryCode)
		}
		list = list[i : i+1]
	}

	return writeCountries(cmd.OutOrStdout(), cfg, list, "Country Directory", cmd.CommandPath())
}

func runFind(cmd *cobra.Command, args []string) error {
	if err := checkFormat(outputFormat); err != nil {
		return err
	}

	cfg, list, err := fetchDirectory(cmd)
	if err != nil {
		return err
	}

	matches := countries.Match(list, args[0])
	if len(matches) == 0 {
		return notFound(cmd.ErrOrStderr(), list, args[0])
	}

	return writeCountries(cmd.OutOrStdout(), cfg, matches, "Country Search", cmd.CommandPath()+" "+args[0])
}

// fetchDirectory loads config, sets up CLI logging and performs the fetch.
// Interrupts cancel the request.
func fetchDirectory(cmd *cobra.Command) (*config.Config, []countries.Country, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if err := logging.Initialize(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, nil, err
	}
	defer logging.Sync()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	list, err := newClient(cfg).FetchAll(ctx)
	if err != nil {
		return nil, nil, reportFetchError(cmd.ErrOrStderr(), err, cfg)
	}

	return cfg, list, nil
}

// reportFetchError explains a failed fetch. Table output gets an error box
// on w; scripted formats and interrupts get a plain error for main to print.
func reportFetchError(w io.Writer, err error, cfg *config.Config) error {
	if countries.IsCanceled(err) {
		return errors.New("interrupted")
	}
	if outputFormat != "table" {
		return fmt.Errorf("failed to fetch countries: %w", err)
	}

	p := ui.NewPrinter(w)
	p.PrintError("Could not load the country directory", countries.ShortMessage(err), fetchHints(err, cfg))
	return errReported
}

func checkFormat(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown format %q (use table, json or yaml)", format)
	}
}

func writeCountries(w io.Writer, cfg *config.Config, list []countries.Country, title, command string) error {
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()

	default:
		p := ui.NewPrinter(w)
		p.PrintHeader(title, command, []ui.Field{
			{Key: "Endpoint", Value: cfg.Countries.Endpoint},
			{Key: "Default", Value: cfg.Countries.DefaultCode},
		})
		p.PrintCountries(list, cfg.Countries.DefaultCode)
		return nil
	}
}

// notFound reports a failed lookup with the closest names
func notFound(w io.Writer, list []countries.Country, query string) error {
	suggestions := countries.Suggest(list, query, suggestionLimit)
	if len(suggestions) > 0 {
		names := make([]string, len(suggestions))
		for i, c := range suggestions {
			names[i] = c.String()
		}
		_, _ = fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(names, ", "))
	}
	return fmt.Errorf("no country matches %q", query)
}

// fetchHints returns troubleshooting tips for a directory fetch failure
func fetchHints(err error, cfg *config.Config) []string {
	switch {
	case countries.IsHTTPError(err), countries.IsParseError(err):
		return []string{
			"Check that " + cfg.Countries.Endpoint + " serves the country list",
			"Use --endpoint or WALLIE_COUNTRIES_ENDPOINT to point at a mirror",
		}
	case countries.IsNetworkError(err):
		return []string{
			"Check your internet connection",
			"Increase countries.timeout (or WALLIE_FETCH_TIMEOUT) on slow networks",
		}
	default:
		return nil
	}
}
