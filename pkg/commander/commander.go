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

package commander

import (
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	skynote "github.com/timburks/skynote/pkg/types"
)

var log = commonlog.GetLogger("skynote.commander")

type Options struct {
	Exporters []skynote.Exporter     // offered in the export popup, in order
	ExportDir string                 // where exports are written
	Explore   func(dir string) error // shows a directory to the user
	TabWidth  int                    // spaces inserted for the tab key
}

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor     skynote.Editor
	options    Options
	mode       int    // application mode
	debug      bool   // debug mode displays information about events
	renameText string // tab name as it is being typed
	message    string // status message
}

func NewCommander(e skynote.Editor, options Options) *Commander {
	if options.TabWidth < 1 {
		options.TabWidth = 4
	}
	c := &Commander{editor: e, options: options, mode: skynote.ModeList}
	active = c
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) getModeName() string {
	switch c.mode {
	case skynote.ModeList:
		return "list"
	case skynote.ModeEdit:
		return "edit"
	case skynote.ModeRename:
		return "rename"
	case skynote.ModeExport:
		return "export"
	case skynote.ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) GetRenameText() string {
	return c.renameText
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) IsRunning() bool {
	return c.mode != skynote.ModeQuit
}

func (c *Commander) ProcessEvent(event *skynote.Event) error {
	switch event.Type {
	case skynote.EventKey:
		c.message = ""
		if c.debug {
			c.message = fmt.Sprintf("mode=%s event=%+v", c.getModeName(), event)
		}
		return c.processKey(event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *skynote.Event) error {
	switch c.mode {
	case skynote.ModeList:
		c.processKeyListMode(event)
	case skynote.ModeEdit:
		c.processKeyEditMode(event)
	case skynote.ModeRename:
		c.processKeyRenameMode(event)
	case skynote.ModeExport:
		c.processKeyExportMode(event)
	}
	return nil
}

func (c *Commander) processKeyListMode(event *skynote.Event) {
	switch event.Key {
	case skynote.KeyEsc, skynote.KeyCtrlC:
		c.parseEval("(quit)")
	case skynote.KeySpace, skynote.KeyEnter:
		c.parseEval("(open-note)")
	case skynote.KeyCtrlR:
		c.parseEval("(rename-mode)")
	case skynote.KeyCtrlO:
		c.parseEval("(explore)")
	}
	switch event.Ch {
	case '[':
		c.parseEval("(previous-tab)")
	case ']':
		c.parseEval("(next-tab)")
	case 'q':
		c.parseEval("(quit)")
	}
}

func (c *Commander) processKeyEditMode(event *skynote.Event) {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case skynote.KeyEsc, skynote.KeyCtrlC:
			c.parseEval("(close-note)")
		case skynote.KeyArrowUp:
			c.parseEval("(up)")
		case skynote.KeyArrowDown:
			c.parseEval("(down)")
		case skynote.KeyArrowLeft:
			c.parseEval("(left)")
		case skynote.KeyArrowRight:
			c.parseEval("(right)")
		case skynote.KeyEnter:
			c.parseEval("(newline)")
		case skynote.KeyBackspace2:
			c.parseEval("(backspace)")
		case skynote.KeySpace:
			c.parseEval("(insert-char 32)")
		case skynote.KeyTab:
			c.parseEval(fmt.Sprintf("(insert-text \"%s\")", strings.Repeat(" ", c.options.TabWidth)))
		case skynote.KeyCtrlN:
			c.parseEval("(next-tab)")
		case skynote.KeyCtrlP:
			c.parseEval("(previous-tab)")
		case skynote.KeyCtrlE:
			c.parseEval("(export-mode)")
		case skynote.KeyCtrlO:
			c.parseEval("(explore)")
		}
	}
	if ch != 0 {
		c.parseEval(fmt.Sprintf("(insert-char %d)", ch))
	}
}

func (c *Commander) processKeyRenameMode(event *skynote.Event) {
	switch event.Key {
	case skynote.KeyEsc, skynote.KeyCtrlC:
		c.mode = skynote.ModeList
	case skynote.KeyEnter:
		c.editor.Rename(c.renameText)
		c.mode = skynote.ModeList
	case skynote.KeyBackspace2:
		if text := []rune(c.renameText); len(text) > 0 {
			c.renameText = string(text[0 : len(text)-1])
		}
	case skynote.KeySpace:
		c.renameText += " "
	}
	if event.Ch != 0 {
		c.renameText += string(event.Ch)
	}
}

func (c *Commander) processKeyExportMode(event *skynote.Event) {
	switch event.Key {
	case skynote.KeyEsc, skynote.KeyCtrlC:
		c.mode = skynote.ModeEdit
	case skynote.KeyCtrlO:
		c.parseEval("(explore)")
	}
	switch ch := event.Ch; {
	case ch >= '0' && ch <= '9':
		c.parseEval(fmt.Sprintf("(export %d)", ch-'0'))
	case ch == 'q' || ch == 'Q':
		c.mode = skynote.ModeEdit
	}
}

// ParseEval evaluates a lisp expression and returns its printed value.
func (c *Commander) ParseEval(command string) (string, error) {
	active = c
	value, err := golispParseAndEval(command)
	if err != nil {
		return "", err
	}
	return value, nil
}

// ParseEvalFile evaluates a script one line at a time and returns the
// value of each expression. Blank lines and ; comments are skipped.
func (c *Commander) ParseEvalFile(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		value, err := c.ParseEval(line)
		if err != nil {
			return values, fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
		values = append(values, value)
	}
	return values, nil
}

// parseEval evaluates a key binding. Errors go to the message bar.
func (c *Commander) parseEval(command string) {
	value, err := c.ParseEval(command)
	if err != nil {
		log.Errorf("%s: %s", command, err.Error())
		c.message = err.Error()
		return
	}
	log.Debugf("%s => %s", command, value)
}
