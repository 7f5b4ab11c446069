package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/notesbox/internal/config"
	"github.com/2beens/notesbox/internal/logging"
	"github.com/2beens/notesbox/internal/notesclient"
	"github.com/2beens/notesbox/internal/telemetry/tracing"
	"github.com/2beens/notesbox/internal/tui"
)

var (
	configPath string
	serverURL  string
	logLevel   string
	tracingOn  bool

	clientCfg    *config.ClientConfig
	otelShutdown func()
)

// rootCmd starts the interactive notes screen
var rootCmd = &cobra.Command{
	Use:   "notes_tui",
	Short: "Terminal client for the notes service",
	Long: `notes_tui lists, creates, edits and deletes notes stored by the notes service.
Logs go to a file, since the screen belongs to the UI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadClientConfig()
		if err != nil {
			return err
		}
		clientCfg = cfg

		logging.Setup(logging.LoggerSetupParams{
			LogFileName: cfg.LogFile,
			LogLevel:    cfg.LogLevel,
		})
		log.Debugf("notes server: %s", cfg.ServerURL)

		otelShutdown, err = tracing.HoneycombSetup(cfg.TracingEnabled, "notes-tui", nil)
		if err != nil {
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client := notesclient.NewTracedClient(clientCfg.ServerURL)
		model := tui.NewModel(cmd.Context(), client)

		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all notes and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := notesclient.NewTracedClient(clientCfg.ServerURL)
		notes, err := client.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No notes to display")
			return nil
		}
		for _, n := range notes {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", n.ID, n.Title, n.Content)
		}
		return nil
	},
}

func loadClientConfig() (*config.ClientConfig, error) {
	path := configPath
	if path == "" {
		defaultPath, err := config.DefaultClientConfigPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.LoadClient(path)
	if err != nil {
		return nil, err
	}

	// flags win over file and env
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if tracingOn {
		cfg.TracingEnabled = true
	}
	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if otelShutdown != nil {
		otelShutdown()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "client config file (default ~/.config/notes/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server-url", "", "notes service base URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level [trace | debug | info | warn | error]")
	rootCmd.PersistentFlags().BoolVar(&tracingOn, "tracing", false, "export request traces to honeycomb (needs HONEYCOMB_API_KEY)")
	rootCmd.AddCommand(listCmd)
}
