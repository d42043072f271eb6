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

package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	skynote "github.com/timburks/skynote/pkg/types"
)

const (
	titleRows  = 3 // title, status and separator
	footerRows = 2 // help and message bars
)

var exportHelp = []string{
	"Export as file",
	"",
	"Files are saved in the export folder.",
	"",
	"[0] Styled HTML - Export as styled .html",
	"[1] Plain HTML - Export as .html with minimal styling",
	"[2] Text - Exports as .txt",
	"",
	"[Q] - Close prompt",
	"",
	"To open the export folder, use Ctrl + O.",
}

// The Screen draws the state of an Editor.
type Screen struct {
	size   skynote.Size // screen size
	offset skynote.Size // scroll offset of the note view
	tab    int          // tab shown at the last render
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(snapshot skynote.Snapshot, c skynote.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()
	if snapshot.CurrentTab != s.tab {
		s.offset = skynote.Size{}
		s.tab = snapshot.CurrentTab
	}

	s.renderTitle(snapshot, c)
	termbox.HideCursor()
	switch c.GetMode() {
	case skynote.ModeEdit:
		s.renderNote(snapshot)
	case skynote.ModeExport:
		s.renderNote(snapshot)
		termbox.HideCursor()
		s.renderExportPopup()
	default:
		s.renderTabList(snapshot)
	}
	s.renderMessageBar(c)
	termbox.Flush()
}

// drawText draws text starting at column x and returns the column after it.
func drawText(x, y int, text string, fg, bg termbox.Attribute) int {
	for _, c := range text {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
	return x
}

func (s *Screen) renderTitle(snapshot skynote.Snapshot, c skynote.Commander) {
	drawText(0, 0, Center("skynote", s.size.Cols), termbox.ColorCyan|termbox.AttrBold, termbox.ColorDefault)
	status := StatusLine(snapshot, c.GetMode() == skynote.ModeRename)
	drawText(1, 1, Fit(status, s.size.Cols-2), termbox.ColorWhite, termbox.ColorDefault)
	drawText(0, 2, strings.Repeat("─", s.size.Cols), termbox.ColorCyan, termbox.ColorDefault)
}

func (s *Screen) renderTabList(snapshot skynote.Snapshot) {
	header := Center("Use [ and ] to navigate tabs. Press Space to open a note, Ctrl + R to rename it.", s.size.Cols)
	drawText(0, titleRows, Fit(header, s.size.Cols), termbox.ColorWhite|termbox.AttrBold, termbox.ColorCyan)

	top := titleRows + 1
	rows := s.size.Rows - top - footerRows
	first := FirstVisible(snapshot.CurrentTab, len(snapshot.TabNames), rows)
	for i := first; i < len(snapshot.TabNames) && i-first < rows; i++ {
		fg, bg := termbox.ColorWhite, termbox.ColorDefault
		marker := "  "
		if i == snapshot.CurrentTab {
			fg, bg = termbox.ColorWhite|termbox.AttrBold, termbox.ColorBlue
			marker = "> "
		}
		drawText(0, top+i-first, Fit(marker+snapshot.TabNames[i], s.size.Cols), fg, bg)
	}
}

func (s *Screen) renderNote(snapshot skynote.Snapshot) {
	name := snapshot.TabNames[snapshot.CurrentTab]
	drawText(1, titleRows, Fit(name, s.size.Cols-1), termbox.ColorCyan|termbox.AttrBold, termbox.ColorDefault)

	origin := skynote.Point{Row: titleRows + 1, Col: 1}
	size := skynote.Size{Rows: s.size.Rows - origin.Row - footerRows, Cols: s.size.Cols - origin.Col}
	cursor := CursorPosition(snapshot.Text, snapshot.Cursor)
	s.offset = Scroll(cursor, s.offset, size)

	lines := strings.Split(snapshot.Text, "\n")
	for i := 0; i < size.Rows; i++ {
		row := i + s.offset.Rows
		if row >= len(lines) {
			drawText(0, origin.Row+i, "~", termbox.ColorBlue, termbox.ColorDefault)
			continue
		}
		drawText(origin.Col, origin.Row+i, Clip(lines[row], s.offset.Cols, size.Cols), termbox.ColorWhite, termbox.ColorDefault)
	}
	help := "Press esc or CTRL + C to return to notes list, CTRL + E to export"
	drawText(0, s.size.Rows-footerRows, Fit(help, s.size.Cols), termbox.ColorBlack, termbox.ColorWhite)
	termbox.SetCursor(origin.Col+cursor.Col-s.offset.Cols, origin.Row+cursor.Row-s.offset.Rows)
}

func (s *Screen) renderExportPopup() {
	width := s.size.Cols * 9 / 10
	height := s.size.Rows * 9 / 10
	x := (s.size.Cols - width) / 2
	y := (s.size.Rows - height) / 2
	for i := 0; i < height; i++ {
		line := ""
		if i > 0 && i-1 < len(exportHelp) {
			line = "  " + exportHelp[i-1]
		}
		fg := termbox.ColorWhite
		if i == 1 {
			fg |= termbox.AttrBold
		}
		drawText(x, y+i, Fit(line, width), fg, termbox.ColorBlack)
	}
}

func (s *Screen) renderMessageBar(c skynote.Commander) {
	y := s.size.Rows - 1
	if c.GetMode() == skynote.ModeRename {
		end := drawText(0, y, "name: "+c.GetRenameText(), termbox.ColorWhite, termbox.ColorDefault)
		termbox.SetCursor(end, y)
		return
	}
	drawText(0, y, Fit(c.GetMessage(), s.size.Cols), termbox.ColorWhite, termbox.ColorDefault)
}

func (s *Screen) GetNextEvent() *skynote.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &skynote.Event{
		Type: eventType(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func eventType(t termbox.EventType) int {
	switch t {
	case termbox.EventKey:
		return skynote.EventKey
	case termbox.EventResize:
		return skynote.EventResize
	case termbox.EventError:
		return skynote.EventError
	default:
		return skynote.EventOther
	}
}

func key(k termbox.Key) skynote.Key {
	switch k {
	case termbox.KeyArrowDown:
		return skynote.KeyArrowDown
	case termbox.KeyArrowLeft:
		return skynote.KeyArrowLeft
	case termbox.KeyArrowRight:
		return skynote.KeyArrowRight
	case termbox.KeyArrowUp:
		return skynote.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return skynote.KeyBackspace2
	case termbox.KeyCtrlC:
		return skynote.KeyCtrlC
	case termbox.KeyCtrlE:
		return skynote.KeyCtrlE
	case termbox.KeyCtrlN:
		return skynote.KeyCtrlN
	case termbox.KeyCtrlO:
		return skynote.KeyCtrlO
	case termbox.KeyCtrlP:
		return skynote.KeyCtrlP
	case termbox.KeyCtrlR:
		return skynote.KeyCtrlR
	case termbox.KeyEnter:
		return skynote.KeyEnter
	case termbox.KeyEsc:
		return skynote.KeyEsc
	case termbox.KeySpace:
		return skynote.KeySpace
	case termbox.KeyTab:
		return skynote.KeyTab
	default:
		return skynote.KeyUnsupported
	}
}
