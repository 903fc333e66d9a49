package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/slider"
	"github.com/alexisbeaulieu97/showcase/internal/tui/showcase"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// session holds what an interactive run owns and must release.
type session struct {
	engine *slider.Engine
	model  showcase.Model
}

func (s *session) Close() {
	s.model.Close()
	s.engine.Close()
}

func newSession(flags *rootFlags) (*session, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.configPath != "" {
		if _, err := os.Stat(flags.configPath); errors.Is(err, os.ErrNotExist) {
			flags.log.WithFields(map[string]any{"config": flags.configPath}).Warn("config file not found, using defaults")
		}
	}

	slides := showcase.SlideViews(cfg.Slides)
	engine := slider.New(len(slides), cfg.SliderOptions(flags.log))
	model := showcase.New(showcase.Options{
		Title:  cfg.Title,
		Theme:  components.ThemeMode(cfg.Theme),
		Engine: engine,
		Slides: slides,
		Logger: flags.log,
	})

	flags.log.WithFields(map[string]any{
		"config": flags.configPath,
		"slides": len(slides),
	}).Info("showcase ready")

	return &session{engine: engine, model: model}, nil
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	s, err := newSession(flags)
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(s.model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		flags.log.Error(err, "showcase program failed")
		return fmt.Errorf("failed to run showcase: %w", err)
	}
	return nil
}
