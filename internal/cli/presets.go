package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ohare93/keyprompt/internal/config"
	"github.com/ohare93/keyprompt/internal/prompt"
	"github.com/ohare93/keyprompt/internal/tui"
)

var presetsBrowse bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List configured prompt presets",
	Long: `List the prompt presets defined in the config file.

Use --browse to open an interactive browser that previews each preset
and reloads automatically when the config file changes.`,
	RunE: runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsBrowse, "browse", false, "Browse presets interactively")
}

func runPresets(cmd *cobra.Command, args []string) error {
	opts := GetConfigOptions()
	conf, err := config.LoadWithOptions(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if presetsBrowse {
		return browsePresets(conf, opts)
	}

	names := conf.PresetNames()
	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No presets configured. Add some to %s\n", config.FilePath(opts))
		return nil
	}

	for _, name := range names {
		preset, err := conf.Preset(name)
		if err != nil {
			return err
		}
		keyList := prompt.FormatKeyList(preset.PromptOptions())
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%s)\n",
			StyleHighlight.Render(name), preset.Question, StyleDim.Render(keyList))
	}
	return nil
}

func browsePresets(conf *config.Config, opts config.Options) error {
	// File watching is best-effort: browsing still works without it,
	// the browser just loses live reload.
	watcher, err := config.NewWatcher(config.FilePath(opts))
	if err == nil {
		watcher.Start()
		defer watcher.Stop()
	} else {
		watcher = nil
	}

	model := tui.NewBrowserModel(conf, opts, watcher)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run preset browser: %w", err)
	}
	return nil
}
