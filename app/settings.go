// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/glintgl/glint/glapi"
)

// Settings configures a window at construction time.
type Settings struct {
	// Title of the window.
	Title string `toml:"title"`
	// Width and Height of the window in logical units.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	Fullscreen  bool `toml:"fullscreen"`
	Resizable   bool `toml:"resizable"`
	Decorated   bool `toml:"decorated"`
	Transparent bool `toml:"transparent"`

	// ExitOnEsc requests that pressing Escape closes the window.
	ExitOnEsc bool `toml:"exit_on_esc"`
	// AutomaticClose sets the close flag when the user asks to
	// close the window.
	AutomaticClose bool `toml:"automatic_close"`

	Vsync bool `toml:"vsync"`
	SRGB  bool `toml:"srgb"`
	// Samples is the number of samples per pixel for
	// multisampled anti-aliasing. Zero disables MSAA.
	Samples int `toml:"samples"`

	// GraphicsAPI is the requested context version. Nil requests
	// OpenGL 3.2.
	GraphicsAPI *glapi.Version `toml:"graphics_api"`
}

// DefaultSettings returns the settings used when a field is left
// at its zero value in a settings file.
func DefaultSettings() Settings {
	return Settings{
		Title:          "glint",
		Width:          640,
		Height:         480,
		Resizable:      true,
		Decorated:      true,
		SRGB:           true,
		AutomaticClose: true,
	}
}

// LoadSettings reads a TOML settings file on top of
// DefaultSettings and validates the result.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports settings no window can be built from.
func (s *Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid window size %gx%g", s.Width, s.Height)
	}
	if s.Samples < 0 {
		return errors.New("samples must not be negative")
	}
	if api := s.GraphicsAPI; api != nil && api.API == "" {
		return errors.New("graphics_api is missing the api name")
	}
	return nil
}

// api returns the requested graphics API version, defaulting to
// OpenGL 3.2.
func (s *Settings) api() glapi.Version {
	if s.GraphicsAPI != nil {
		return *s.GraphicsAPI
	}
	return glapi.OpenGL(3, 2)
}
