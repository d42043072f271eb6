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

// Package types holds the vocabulary shared by the skynote packages.
// It is usually imported as "skynote".
package types

// Commander modes
const (
	ModeList   = 0 // selecting a tab
	ModeEdit   = 1 // editing the current note
	ModeRename = 2 // typing a new name for the current tab
	ModeExport = 3 // export popup is open
	ModeQuit   = 9999
)

// CommandKind names an abstract edit command.
type CommandKind int

// Edit commands
const (
	MoveLeft CommandKind = iota
	MoveRight
	MoveLineUp
	MoveLineDown
	InsertChar
	InsertNewline
	DeleteBackward
	NextTab
	PreviousTab
)

var commandNames = map[CommandKind]string{
	MoveLeft:       "move-left",
	MoveRight:      "move-right",
	MoveLineUp:     "move-line-up",
	MoveLineDown:   "move-line-down",
	InsertChar:     "insert-char",
	InsertNewline:  "insert-newline",
	DeleteBackward: "delete-backward",
	NextTab:        "next-tab",
	PreviousTab:    "previous-tab",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Mutates reports whether a command changes document content.
func (k CommandKind) Mutates() bool {
	return k == InsertChar || k == InsertNewline || k == DeleteBackward
}

// A Command is one decoded user intent. Char is only used by InsertChar.
type Command struct {
	Kind CommandKind
	Char rune
}

// A Snapshot is the read-only view of the editor used for rendering.
type Snapshot struct {
	TabNames   []string
	CurrentTab int
	Text       string
	Cursor     int
	Lines      int
	Characters int
	Editable   bool
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 2
	EventOther  = 3
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Key int

// Keys
const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlC
	KeyCtrlE
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlR
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
)

// An Exporter writes a named document somewhere and reports where.
type Exporter interface {
	Export(name, text string) (path string, err error)
}

// Editor is the part of the editor used by the commander.
type Editor interface {
	Perform(cmd Command) error
	Snapshot() Snapshot
	Rename(name string)
	SelectTab(index int) error
	InsertText(text string) error
	Export(x Exporter) (string, error)
}

// Commander is the part of the commander used by the screen.
type Commander interface {
	GetMode() int
	GetMessage() string
	GetRenameText() string
}
