package cli

import (
	"github.com/spf13/cobra"

	"github.com/ohare93/keyprompt/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "keyprompt",
	Short:         "Single-keystroke prompts for terminals and scripts",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Keyprompt asks a question and waits for a single keystroke.

Each answer is a (key, value, description) option. The first matching key
wins and its value is printed to stdout, so shell scripts can branch on
the result. Unknown keys re-prompt with a reminder; "?" shows a help
panel listing the available keys.

Getting started:
- One-off question: keyprompt ask "Save changes?" -o y:yes:Yes -o n:no:No
- Yes/no with exit status: keyprompt confirm "Continue?"
- Reusable prompts: define presets in ~/.keyprompt/config.yaml, then
  keyprompt ask --preset <name>
- Inspect presets: keyprompt presets [--browse]`,
}

// GlobalOptions holds global configuration flags for testing and path
// overrides
type GlobalOptions struct {
	ConfigHome string // Override for the home directory
	ConfigDir  string // Override for the .keyprompt directory name
}

// GlobalOpts holds the parsed global flags (exported for testing)
var GlobalOpts GlobalOptions

// GetConfigOptions returns config options based on global flags
func GetConfigOptions() config.Options {
	opts := config.DefaultOptions()
	if GlobalOpts.ConfigHome != "" {
		opts.ConfigHome = GlobalOpts.ConfigHome
	}
	if GlobalOpts.ConfigDir != "" {
		opts.DirName = GlobalOpts.ConfigDir
	}
	return opts
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.ConfigHome, "config-home", "", "Override home directory for config lookup (for testing)")
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.ConfigDir, "config-dir", config.DefaultDirName, "Override .keyprompt directory name")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(presetsCmd)
}
