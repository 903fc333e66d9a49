package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/tui/showcase"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

type renderFlags struct {
	index int
	width int
	theme string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print every component once without starting the UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), root, flags)
		},
	}

	cmd.Flags().IntVar(&flags.index, "index", -1, "Render the carousel at this slide only (0-based)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Render width in columns (defaults to the terminal width)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Override the configured theme: dark or light")

	return cmd
}

func runRender(out io.Writer, root *rootFlags, flags *renderFlags) error {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	theme := components.ThemeMode(cfg.Theme)
	if flags.theme != "" {
		theme = components.ThemeMode(flags.theme)
		if theme != components.ThemeDark && theme != components.ThemeLight {
			return fmt.Errorf("unknown theme %q", flags.theme)
		}
	}

	width := flags.width
	if width <= 0 {
		width = terminalWidth(out)
	}

	root.log.WithFields(map[string]any{"index": flags.index, "width": width}).Debug("rendering gallery")

	return showcase.RenderGallery(out, showcase.GalleryOptions{
		Title:   cfg.Title,
		Theme:   theme,
		Width:   width,
		Slides:  showcase.SlideViews(cfg.Slides),
		Options: cfg.SliderOptions(root.log),
		Index:   flags.index,
	})
}

// terminalWidth reports the width of out when it is a terminal, or zero.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
