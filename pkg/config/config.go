//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads skynote settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/timburks/skynote/pkg/editor"
)

// Config holds all user settings. Zero values are replaced by defaults.
type Config struct {
	HomeName     string `toml:"home_name"`
	HomeEditable bool   `toml:"home_editable"`
	TabName      string `toml:"tab_name"`
	TabWidth     int    `toml:"tab_width"`
	ExportDir    string `toml:"export_dir"`
	Style        string `toml:"style"`
	LogFile      string `toml:"log_file"`
	Verbosity    int    `toml:"verbosity"`
}

func Default() *Config {
	return &Config{
		HomeName:  "home",
		TabName:   "Tab %d",
		TabWidth:  4,
		ExportDir: "data",
		Style:     "monokai",
		LogFile:   "~/.skynotelog",
		Verbosity: 1,
	}
}

// DefaultPath returns ~/.config/skynote/config.toml, or an empty string
// if there is no home directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "skynote", "config.toml")
}

// Load reads the configuration at path. A missing file gives the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if !editor.ValidTabName(c.TabName) {
		return fmt.Errorf("tab_name %q must contain exactly one %%d", c.TabName)
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		return errors.New("export_dir must not be empty")
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width %d must be between 1 and 16", c.TabWidth)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d must not be negative", c.Verbosity)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
