package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wallie/wallie/internal/config"
	"github.com/wallie/wallie/internal/countries"
	"github.com/wallie/wallie/internal/logging"
	"github.com/wallie/wallie/internal/theme"
	"github.com/wallie/wallie/internal/tui"
)

// Persistent flags
var (
	configPath string
	endpoint   string
	logLevel   string
	logFile    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Country directory URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default silent)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (required for logging from the sign-up screen)")

	rootCmd.AddCommand(signupCmd)
}

// loadConfig reads the config file and environment, then applies flag
// overrides on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if endpoint != "" {
		cfg.Countries.Endpoint = endpoint
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// newClient builds the directory client described by cfg
func newClient(cfg *config.Config) *countries.Client {
	client := countries.NewClient(cfg.Countries.Endpoint, cfg.Countries.FlagBaseURL)
	client.SetTimeout(cfg.Countries.Timeout)
	return client
}

// signupCmd launches the interactive sign-up screen
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Launch the sign-up screen",
	Long: `Launch the interactive sign-up screen.

The screen loads the country directory once when it opens. If the load
fails, the calling code picker stays empty and no code is selected.

Logs are only written when --log-file (or log.file) is set, since the
screen owns the terminal.`,
	Example: `  # Launch the screen (also the default with no command)
  wallie signup
  wallie

  # Use a mirror of the country directory
  wallie --endpoint https://countries.example.com/all

  # Debug logging to a file
  wallie --log-level debug --log-file /tmp/wallie.log`,
	RunE: runSignUp,
}

func runSignUp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logging.InitializeForTUI(cfg.Log.Level, cfg.Log.File); err != nil {
		return err
	}
	defer logging.Sync()

	app := tui.NewAppModel(tui.SignUpOptions{
		Source:      newClient(cfg),
		DefaultCode: cfg.Countries.DefaultCode,
		Destination: cfg.Navigation.Destination,
		Tokens:      theme.Default(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()

	// A load still in flight must not outlive the program
	if m, ok := final.(tui.AppModel); ok {
		m.SignUp.Close()
	}
	if err != nil {
		return fmt.Errorf("sign-up screen error: %w", err)
	}

	return nil
}
