package config

import (
	"time"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/slider"
)

// Config is the showcase configuration file.
type Config struct {
	Title  string       `yaml:"title" toml:"title" validate:"required"`
	Theme  string       `yaml:"theme" toml:"theme" validate:"oneof=dark light"`
	Slider SliderConfig `yaml:"slider" toml:"slider"`
	Slides []Slide      `yaml:"slides" toml:"slides" validate:"dive"`
}

// SliderConfig mirrors slider.Options in file form.
type SliderConfig struct {
	AutoPlay bool `yaml:"auto_play" toml:"auto_play"`
	// AutoPlayInterval is in milliseconds. Values below the engine minimum
	// are clamped by the engine rather than rejected here.
	AutoPlayInterval int     `yaml:"auto_play_interval" toml:"auto_play_interval"`
	ShowArrows       bool    `yaml:"show_arrows" toml:"show_arrows"`
	ShowDots         bool    `yaml:"show_dots" toml:"show_dots"`
	Animation        string  `yaml:"animation" toml:"animation" validate:"oneof=fade slide"`
	Infinite         bool    `yaml:"infinite" toml:"infinite"`
	SwipeThreshold   float64 `yaml:"swipe_threshold" toml:"swipe_threshold" validate:"gte=0"`
}

// Slide is one carousel entry.
type Slide struct {
	Title string `yaml:"title" toml:"title" validate:"required"`
	Body  string `yaml:"body" toml:"body"`
}

const (
	defaultTitle = "Component Library Showcase"
	// defaultSwipeThreshold is in terminal cells; a drag across a few
	// columns is a deliberate swipe.
	defaultSwipeThreshold = 8
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Title: defaultTitle,
		Theme: "dark",
		Slider: SliderConfig{
			AutoPlay:         true,
			AutoPlayInterval: 5000,
			ShowArrows:       true,
			ShowDots:         true,
			Animation:        string(slider.AnimationFade),
			Infinite:         true,
			SwipeThreshold:   defaultSwipeThreshold,
		},
		Slides: []Slide{
			{Title: "Slide 1", Body: "home-main.webp"},
			{Title: "Slide 2", Body: "image1.png"},
			{Title: "Slide 3", Body: "image2.png"},
		},
	}
}

// Interval returns the auto-play interval as a duration.
func (s SliderConfig) Interval() time.Duration {
	return time.Duration(s.AutoPlayInterval) * time.Millisecond
}

// SliderOptions converts the slider section into engine options.
func (c Config) SliderOptions(log *logger.Logger) slider.Options {
	s := c.Slider
	return slider.Options{
		AutoPlay:       s.AutoPlay,
		Interval:       s.Interval(),
		ShowArrows:     s.ShowArrows,
		ShowDots:       s.ShowDots,
		Animation:      slider.Animation(s.Animation),
		Infinite:       s.Infinite,
		SwipeThreshold: s.SwipeThreshold,
		Logger:         log,
	}
}
