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

package editor

import (
	"sync"

	"github.com/tliron/commonlog"

	skynote "github.com/timburks/skynote/pkg/types"
)

var log = commonlog.GetLogger("skynote.editor")

// DefaultHomeName is the name of the first tab.
const DefaultHomeName = "home"

type Options struct {
	HomeName     string // name of the first tab
	HomeEditable bool   // if false, edits to the first tab are ignored
	TabName      string // name pattern for new tabs, see DefaultTabName
}

// The Editor applies commands to the selected document of its tabs.
// There is typically only one editor in a skynote instance.
// Tabs and the selected document are guarded together: an offset is only
// valid against the content it was computed from.
type Editor struct {
	mutex        sync.Mutex
	tabs         *Tabs
	homeEditable bool
}

func NewEditor(options Options) *Editor {
	name := options.HomeName
	if name == "" {
		name = DefaultHomeName
	}
	return &Editor{
		tabs:         NewTabs(NewDocument(name, ""), options.TabName),
		homeEditable: options.HomeEditable,
	}
}

// editable reports whether the selected document accepts edits.
func (e *Editor) editable() bool {
	return e.homeEditable || e.tabs.Index() != 0
}

// Perform applies a command to the selected document and cursor.
// Edits to a read-only home tab are silently ignored.
func (e *Editor) Perform(cmd skynote.Command) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if cmd.Kind.Mutates() && !e.editable() {
		log.Debugf("ignoring %s on read-only tab %d", cmd.Kind, e.tabs.Index())
		return nil
	}

	d := e.tabs.Current()
	cursor := e.tabs.Cursor()
	var err error
	switch cmd.Kind {
	case skynote.MoveLeft:
		cursor, err = MoveLeft(d.Read(), cursor)
	case skynote.MoveRight:
		cursor, err = MoveRight(d.Read(), cursor)
	case skynote.MoveLineUp:
		cursor, err = MoveToPreviousLine(d.Read(), cursor)
	case skynote.MoveLineDown:
		cursor, err = MoveToNextLine(d.Read(), cursor)
	case skynote.InsertChar:
		cursor = InsertChar(d, cursor, cmd.Char)
	case skynote.InsertNewline:
		cursor = InsertNewline(d, cursor)
	case skynote.DeleteBackward:
		cursor = DeleteBeforeCursor(d, cursor)
	case skynote.NextTab:
		e.tabs.SelectNext()
		return nil
	case skynote.PreviousTab:
		e.tabs.SelectPrevious()
		return nil
	default:
		log.Warningf("unknown command %d", cmd.Kind)
		return nil
	}
	if err != nil {
		log.Errorf("%s: %s", cmd.Kind, err.Error())
		return err
	}
	e.tabs.SetCursor(cursor)
	return nil
}

// InsertText inserts text at the cursor of the selected document.
func (e *Editor) InsertText(text string) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if !e.editable() {
		return nil
	}
	cursor := InsertText(e.tabs.Current(), e.tabs.Cursor(), text)
	e.tabs.SetCursor(cursor)
	return nil
}

// Rename sets the name of the selected document.
func (e *Editor) Rename(name string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.tabs.Current().SetName(name)
}

// SelectTab selects an existing tab by index.
func (e *Editor) SelectTab(index int) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.tabs.Select(index)
}

// Snapshot returns the state needed to draw the editor.
func (e *Editor) Snapshot() skynote.Snapshot {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	d := e.tabs.Current()
	return skynote.Snapshot{
		TabNames:   e.tabs.Names(),
		CurrentTab: e.tabs.Index(),
		Text:       d.Read(),
		Cursor:     e.tabs.Cursor(),
		Lines:      d.LineCount(),
		Characters: d.RuneCount(),
		Editable:   e.editable(),
	}
}

// Export hands the name and text of the selected document to x.
func (e *Editor) Export(x skynote.Exporter) (string, error) {
	e.mutex.Lock()
	d := e.tabs.Current()
	name, text := d.Name(), d.Read()
	e.mutex.Unlock()

	path, err := x.Export(name, text)
	if err != nil {
		log.Errorf("export of %q failed: %s", name, err.Error())
		return "", err
	}
	log.Infof("exported %q to %s", name, path)
	return path, nil
}
