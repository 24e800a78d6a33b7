package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ohare93/keyprompt/internal/config"
	"github.com/ohare93/keyprompt/internal/prompt"
	"github.com/ohare93/keyprompt/internal/terminal"
	"github.com/ohare93/keyprompt/internal/tui"
)

var (
	askOptionSpecs []string
	askPreset      string
	askTimeout     int
	askAlwaysHelp  bool
	askHelpText    string
	askSurface     string
	askInheritIM   bool
	askTUI         bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question answered by a single keystroke",
	Long: `Ask a question and wait for one keypress from a fixed set of keys.

The matched option's value is printed to stdout. Unknown keys re-prompt;
"?" shows a help panel unless --always-help keeps it on screen.

Options are key:value:description triples. The question and options can
also come from a named preset, with flags layered on top.

Examples:
  keyprompt ask "Save changes?" -o y:yes:Yes -o n:no:No
  keyprompt ask "Pick a lane" -o 1:left:"Left lane" -o 2:right:"Right lane" --timeout 30
  keyprompt ask --preset deploy
  keyprompt ask --preset deploy --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringArrayVarP(&askOptionSpecs, "option", "o", nil, "Answer option as key:value:description (repeatable)")
	askCmd.Flags().StringVar(&askPreset, "preset", "", "Load question and options from a configured preset")
	askCmd.Flags().IntVar(&askTimeout, "timeout", 0, "Seconds to wait for a keystroke (0 waits forever)")
	askCmd.Flags().BoolVar(&askAlwaysHelp, "always-help", false, "Show the help panel before every keystroke")
	askCmd.Flags().StringVar(&askHelpText, "help-text", "", "Override the first line of the help panel")
	askCmd.Flags().StringVar(&askSurface, "surface", "", "Name of the help panel surface")
	askCmd.Flags().BoolVar(&askInheritIM, "inherit-input-method", false, "Accept input-method composed characters as answers")
	askCmd.Flags().BoolVar(&askTUI, "tui", false, "Run as a full-screen prompt")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := ""
	if len(args) > 0 {
		question = args[0]
	}

	var options []prompt.Option
	var cfg prompt.Config

	if askPreset != "" {
		conf, err := config.LoadWithOptions(GetConfigOptions())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		preset, err := conf.Preset(askPreset)
		if err != nil {
			return err
		}
		if question == "" {
			question = preset.Question
		}
		options = preset.PromptOptions()
		cfg = preset.PromptConfig()
	}

	for _, spec := range askOptionSpecs {
		opt, err := parseOptionSpec(spec)
		if err != nil {
			return err
		}
		options = append(options, opt)
	}

	// Flags layer over preset settings.
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = time.Duration(askTimeout) * time.Second
	}
	if cmd.Flags().Changed("always-help") {
		cfg.AlwaysShowHelp = askAlwaysHelp
	}
	if askHelpText != "" {
		cfg.HelpText = askHelpText
	}
	if askSurface != "" {
		cfg.HelpSurface = askSurface
	}
	if askInheritIM {
		cfg.InheritInputMethod = true
	}

	var value any
	var err error
	if askTUI {
		value, err = tui.Run(question, options, cfg)
	} else {
		value, err = terminal.Ask(question, options, cfg)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// parseOptionSpec parses one key:value:description triple.
func parseOptionSpec(spec string) (prompt.Option, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 || parts[0] == "" {
		return prompt.Option{}, fmt.Errorf("invalid option %q: expected key:value:description", spec)
	}
	return prompt.Option{Key: parts[0], Value: parts[1], Desc: parts[2]}, nil
}
