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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
home_name = "index"
home_editable = true
tab_name = "Note %d"
export_dir = "out"
`))
	require.NoError(t, err)
	assert.Equal(t, "index", c.HomeName)
	assert.True(t, c.HomeEditable)
	assert.Equal(t, "Note %d", c.TabName)
	assert.Equal(t, "out", c.ExportDir)
	// untouched keys keep their defaults
	assert.Equal(t, 4, c.TabWidth)
	assert.Equal(t, "monokai", c.Style)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"no verb":     `tab_name = "Tab"`,
		"two verbs":   `tab_name = "Tab %d %d"`,
		"string verb": `tab_name = "Tab %s"`,
		"empty dir":   `export_dir = " "`,
		"tab width":   `tab_width = 0`,
		"verbosity":   `verbosity = -1`,
		"syntax":      `home_name = `,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`style = "github"`), 0644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "github", c.Style)

	require.NoError(t, os.WriteFile(path, []byte(`tab_width = 99`), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, path)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".skynotelog"), ExpandHome("~/.skynotelog"))
	assert.Equal(t, "/tmp/log", ExpandHome("/tmp/log"))
	assert.Equal(t, "~user/log", ExpandHome("~user/log"))
}
