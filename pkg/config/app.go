package config

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/otec/pkg/environment"
)

// App is the configuration of the otec CLI.
type App struct {
	Env       string        `env:"OTEC_ENV" envDefault:"development"`
	LogLevel  string        `env:"OTEC_LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"OTEC_LOG_FORMAT" envDefault:"text"`
	Lang      string        `env:"OTEC_LANG" envDefault:"es"`
	PerPage   int           `env:"OTEC_PER_PAGE" envDefault:"15"`
	Debounce  time.Duration `env:"OTEC_DEBOUNCE" envDefault:"300ms"`
	MemoSize  int           `env:"OTEC_MEMO_SIZE" envDefault:"128"`
}

// Environment returns the parsed deployment environment.
func (a App) Environment() environment.Environment {
	return environment.Parse(a.Env)
}

// Validate checks values env tags cannot express.
func (a App) Validate() error {
	switch {
	case a.Lang != "es" && a.Lang != "en":
		return fmt.Errorf("%w: OTEC_LANG must be es or en, got %q", ErrInvalidApp, a.Lang)
	case a.LogFormat != "text" && a.LogFormat != "json":
		return fmt.Errorf("%w: OTEC_LOG_FORMAT must be text or json, got %q", ErrInvalidApp, a.LogFormat)
	case a.PerPage <= 0:
		return fmt.Errorf("%w: OTEC_PER_PAGE must be positive, got %d", ErrInvalidApp, a.PerPage)
	case a.Debounce < 0:
		return fmt.Errorf("%w: OTEC_DEBOUNCE must not be negative", ErrInvalidApp)
	case a.MemoSize < 0:
		return fmt.Errorf("%w: OTEC_MEMO_SIZE must not be negative", ErrInvalidApp)
	}
	return nil
}

// LoadApp loads and validates App.
func LoadApp() (App, error) {
	var a App
	if err := Load(&a); err != nil {
		return App{}, err
	}
	if err := a.Validate(); err != nil {
		return App{}, err
	}
	return a, nil
}
