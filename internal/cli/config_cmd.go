package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/makery/addressapp/internal/config"
)

type globalConfigContext struct {
	cfg          *config.Config
	configPath   string
	statePath    string
	configExists bool
}

// configField is one config.toml setting that 'config set/unset' can change.
type configField struct {
	key   string // toml key, dotted for sections
	flag  string
	usage string
	get   func(*config.Config) string
	set   func(*config.Config, string)
	check func(string) error
}

var configFields = []configField{
	{
		key: "editor", flag: "editor", usage: "Editor command for 'addr edit'",
		get: func(c *config.Config) string { return c.Editor },
		set: func(c *config.Config, v string) { c.Editor = v },
	},
	{
		key: "state_file", flag: "state-file", usage: "State file path (relative to the config directory)",
		get: func(c *config.Config) string { return c.StateFile },
		set: func(c *config.Config, v string) { c.StateFile = v },
	},
	{
		key: "prefs_backend", flag: "prefs-backend", usage: "Preference store: toml or sqlite",
		get: func(c *config.Config) string { return c.PrefsBackend },
		set: func(c *config.Config, v string) { c.PrefsBackend = v },
		check: func(v string) error {
			_, err := (&config.Config{PrefsBackend: v}).Backend()
			return err
		},
	},
	{
		key: "ui.accent", flag: "ui-accent", usage: "Accent color: ANSI code or #RRGGBB",
		get: func(c *config.Config) string { return c.UI.Accent },
		set: func(c *config.Config, v string) { c.UI.Accent = v },
	},
	{
		key: "log.level", flag: "log-level", usage: "Log level: debug, info, warn, error",
		get: func(c *config.Config) string { return c.Log.Level },
		set: func(c *config.Config, v string) { c.Log.Level = v },
		check: oneOf("debug", "info", "warn", "error"),
	},
	{
		key: "log.format", flag: "log-format", usage: "Log format: text or json",
		get: func(c *config.Config) string { return c.Log.Format },
		set: func(c *config.Config, v string) { c.Log.Format = v },
		check: oneOf("text", "json"),
	},
	{
		key: "log.file", flag: "log-file", usage: "Append logs to this file",
		get: func(c *config.Config) string { return c.Log.File },
		set: func(c *config.Config, v string) { c.Log.File = v },
	},
}

func oneOf(values ...string) func(string) error {
	return func(v string) error {
		for _, allowed := range values {
			if strings.EqualFold(v, allowed) {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(values, ", "))
	}
}

var (
	configSetValues   = map[string]*string{}
	configUnsetValues = map[string]*bool{}
)

func loadGlobalConfigContextAllowMissing() (*globalConfigContext, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	_, statErr := os.Stat(resolvedPath)
	exists := statErr == nil
	if statErr != nil && !os.IsNotExist(statErr) {
		return nil, statErr
	}

	loadedCfg := &config.Config{}
	if exists {
		var err error
		loadedCfg, err = config.LoadFrom(resolvedPath)
		if err != nil {
			return nil, err
		}
	}

	return &globalConfigContext{
		cfg:          loadedCfg,
		configPath:   resolvedPath,
		statePath:    config.ResolveStatePath(statePathFlag, resolvedPath, loadedCfg),
		configExists: exists,
	}, nil
}

func configData(ctx *globalConfigContext) map[string]interface{} {
	values := make(map[string]interface{}, len(configFields))
	for _, f := range configFields {
		values[f.key] = strings.TrimSpace(f.get(ctx.cfg))
	}
	return map[string]interface{}{
		"config_path": ctx.configPath,
		"state_path":  ctx.statePath,
		"exists":      ctx.configExists,
		"values":      values,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configData(ctx), nil)
		return nil
	}

	if !ctx.configExists {
		fmt.Printf("Config file does not exist: %s\n", ctx.configPath)
		fmt.Println("Run 'addr config init' to create it.")
		return nil
	}

	fmt.Printf("config: %s\n", ctx.configPath)
	fmt.Printf("state:  %s\n", ctx.statePath)
	for _, f := range configFields {
		if v := strings.TrimSpace(f.get(ctx.cfg)); v != "" {
			fmt.Printf("%s: %s\n", f.key, v)
		}
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage config.toml settings",
	Long: `Manage config.toml settings.

Use this to initialize, inspect, and edit machine-level configuration.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.ResolveConfigPath(configPath)
		created, err := config.CreateDefault(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": targetPath,
				"created":     created,
			}, nil)
			return nil
		}

		if created {
			fmt.Printf("Created config: %s\n", targetPath)
		} else {
			fmt.Printf("Config already exists: %s\n", targetPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more config.toml fields",
	Long: `Set one or more config.toml fields.

Examples:
  addr config set --editor "code --wait"
  addr config set --prefs-backend sqlite --log-level info`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		var changed []string
		for _, f := range configFields {
			if !cmd.Flags().Changed(f.flag) {
				continue
			}
			value := strings.TrimSpace(*configSetValues[f.flag])
			if value == "" {
				return handleErrorMsg(ErrInvalidInput,
					fmt.Sprintf("%s cannot be empty; use 'addr config unset --%s' to clear it", f.flag, f.flag), "")
			}
			if f.check != nil {
				if err := f.check(value); err != nil {
					return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("%s: %v", f.flag, err), "")
				}
			}
			f.set(ctx.cfg, value)
			changed = append(changed, f.key)
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields provided; see 'addr config set --help'", "")
		}
		return saveConfigContext(ctx, changed)
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Clear one or more config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if !ctx.configExists {
			return handleErrorMsg(ErrFileReadError, fmt.Sprintf("config file not found: %s", ctx.configPath), "Run 'addr config init' first")
		}

		var changed []string
		for _, f := range configFields {
			if *configUnsetValues[f.flag] {
				f.set(ctx.cfg, "")
				changed = append(changed, f.key)
			}
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields provided; see 'addr config unset --help'", "")
		}
		return saveConfigContext(ctx, changed)
	},
}

func saveConfigContext(ctx *globalConfigContext, changed []string) error {
	if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
		return handleError(ErrFileWriteError, err, "")
	}
	ctx.configExists = true

	if isJSONOutput() {
		data := configData(ctx)
		data["changed"] = changed
		outputSuccess(data, nil)
		return nil
	}

	fmt.Printf("Updated config: %s\n", ctx.configPath)
	fmt.Printf("changed: %s\n", strings.Join(changed, ", "))
	return nil
}

func init() {
	for _, f := range configFields {
		configSetValues[f.flag] = configSetCmd.Flags().String(f.flag, "", f.usage)
		configUnsetValues[f.flag] = configUnsetCmd.Flags().Bool(f.flag, false, "Clear "+f.key)
	}

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}
