package cli

import (
	"github.com/spf13/cobra"

	"fanmenu/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type       CommandType
	ConfigPath string
	Direction  string
	TitleSide  string
	NoSound    bool
	Instant    bool
	LogFile    string
	Force      bool
	DryRun     bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
	init    bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:       CommandRun,
		ConfigPath: config.FileName,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRunCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	if flags.init {
		result.Type = CommandInit
	}

	return result, nil
}

// Override applies the command-line look overrides to a configuration
func (o *Options) Override(cfg *config.Config) {
	if o.Direction != "" {
		cfg.Menu.Direction = o.Direction
	}

	if o.TitleSide != "" {
		cfg.Menu.TitleSide = o.TitleSide
	}

	if o.NoSound {
		cfg.Sounds.Enabled = false
	}
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A fan-out menu in your terminal",
		Long: `fanmenu hosts a fan-out menu in the terminal: a hub that expands its
items along an arc, labels them with titles, and folds them back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().StringVarP(&result.ConfigPath, "config", "c", config.FileName, "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&result.LogFile, "log-file", "", "Write logs to this file while the menu is shown")
	cmd.PersistentFlags().StringVarP(&result.Direction, "direction", "d", "", "Expanding direction: top, bottom, or left")
	cmd.PersistentFlags().StringVar(&result.TitleSide, "title-side", "", "Title side: left or right")

	cmd.Flags().BoolVar(&result.NoSound, "no-sound", false, "Disable sound cues")
	cmd.Flags().BoolVar(&result.Instant, "instant", false, "Toggle the hub without animation")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.Flags().BoolVarP(&flags.init, "init", "i", false, "Generate fanmenu.yaml template")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Show the menu",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.Flags().BoolVar(&result.NoSound, "no-sound", false, "Disable sound cues")
	cmd.Flags().BoolVar(&result.Instant, "instant", false, "Toggle the hub without animation")

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate fanmenu.yaml template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")
	cmd.Flags().BoolVar(&result.NoSound, "no-sound", false, "Generate with sound cues disabled")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
