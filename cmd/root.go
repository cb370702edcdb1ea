package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/zhubert/postview/internal/api"
	"github.com/zhubert/postview/internal/app"
	"github.com/zhubert/postview/internal/clipboard"
	"github.com/zhubert/postview/internal/config"
	"github.com/zhubert/postview/internal/logger"
)

var (
	configPath            string
	apiURL                string
	debugMode             bool
	verboseMode           bool
	version, commit, date string

	// cfg is loaded once per invocation by loadConfig.
	cfg *config.Config
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "postview",
	Short: "Browse users, their posts and the comments on them",
	Long: `postview is a terminal client for a users/posts/comments REST backend.

Pick a user, open one of their posts, then read, write and delete comments.
Without a subcommand it starts the interactive UI; the users, posts, comments
and comment subcommands talk to the same backend for scripting.`,
	PersistentPreRunE: loadConfig,
	RunE:              runTUI,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Backend base URL (overrides config and "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Mirror logs to stderr (headless commands only)")
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("postview %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("postview %s\n", version)
}

// loadConfig reads .env and the config file, applies flag overrides and
// starts the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("error loading .env: %w", err)
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if apiURL != "" {
		loaded.APIURL = apiURL
	}
	cfg = loaded

	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	if debugMode {
		logger.SetDebug(true)
	}
	// The TUI owns the terminal, so only headless commands mirror.
	logger.MirrorToStderr(verboseMode && cmd.HasParent())

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = logger.DefaultLogPath
	}
	if err := logger.Init(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return nil
}

// newBackend builds the HTTP client for the configured backend.
func newBackend() *api.Client {
	return api.NewClient(cfg.APIURL, api.WithTimeout(cfg.RequestTimeout))
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("postview needs an interactive terminal\n\nUse 'postview users', 'postview posts' or 'postview comments' for scripting")
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable: %v", err)
	}

	ctx := cmd.Context()
	m := app.New(cfg, newBackend(), app.WithContext(ctx), app.WithVersion(version))
	p := tea.NewProgram(m, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
