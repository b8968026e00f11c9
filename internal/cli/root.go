// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/makery/addressapp/internal/app"
	"github.com/makery/addressapp/internal/config"
	"github.com/makery/addressapp/internal/logging"
	"github.com/makery/addressapp/internal/prefs"
	"github.com/makery/addressapp/internal/ui"
)

var (
	// Global flags
	configPath    string
	statePathFlag string
	logLevelFlag  string
	ephemeral     bool

	// Resolved values
	resolvedConfigPath string
	resolvedStatePath  string
	cfg                *config.Config
	logger             = zerolog.Nop()

	// shell is the address book every command works on. Inside a session it
	// outlives single commands.
	shell       *app.Shell
	prefsCloser io.Closer
	inSession   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "addr",
	Short: "addr - a small address book",
	Long: `addr keeps an address book of persons in an XML file.

The file last opened or saved is remembered and reopened on the next run.
Without one, the address book starts with a few sample persons.

Run 'addr session' to work on the address book interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsShell(cmd) {
			return nil
		}
		if shell != nil {
			return nil
		}
		return setupShell()
	},
}

// needsShell reports whether cmd works on the address book.
func needsShell(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "completion", "help", "about", "config", "guide":
		return false
	}
	if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "config") {
		return false
	}
	return true
}

// setupShell loads config and preferences and restores the current file.
func setupShell() error {
	var err error
	cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
	if err != nil {
		return reportError(ErrConfigInvalid, fmt.Errorf("failed to load config: %w", err), "Run 'addr config' to inspect the configuration")
	}
	resolvedStatePath = config.ResolveStatePath(statePathFlag, resolvedConfigPath, cfg)
	ui.ConfigureTheme(cfg.UI.Accent)

	logOptions := logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File}
	if strings.TrimSpace(logLevelFlag) != "" {
		logOptions.Level = logLevelFlag
	}
	logger = logging.New(logOptions, os.Stderr)

	store, closer, err := openPrefs()
	if err != nil {
		return reportError(ErrPrefsError, err, "Check prefs_backend and state_file in config.toml")
	}
	prefsCloser = closer

	shell = app.New(app.Options{Prefs: store, Logger: &logger})
	if err := shell.Restore(); err != nil {
		// The sample list stays in place; the broken setting is kept so the
		// user can see which file failed.
		logger.Warn().Err(err).Msg("could not restore last address file")
		if isJSONOutput() {
			startupWarnings = append(startupWarnings, Warning{Code: WarnRestoreError, Message: err.Error()})
		} else {
			fmt.Fprintln(os.Stderr, ui.Warning(err.Error()))
		}
	}
	return nil
}

func openPrefs() (prefs.Store, io.Closer, error) {
	if ephemeral {
		return prefs.NewMemoryStore(), nil, nil
	}
	backend, err := cfg.Backend()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug().Str("backend", backend).Str("state", resolvedStatePath).Msg("opening preferences")
	return prefs.Open(backend, resolvedStatePath)
}

// closeShell releases the preference store and forgets the shell.
func closeShell() {
	if prefsCloser != nil {
		if err := prefsCloser.Close(); err != nil {
			logger.Warn().Err(err).Msg("closing preferences")
		}
	}
	prefsCloser = nil
	shell = nil
}

// Execute runs the CLI.
func Execute() error {
	defer closeShell()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&statePathFlag, "state", "", "Path to state file (overrides state_file in config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripts)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Do not read or remember the current file")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
