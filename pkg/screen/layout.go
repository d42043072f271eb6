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
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	skynote "github.com/timburks/skynote/pkg/types"
)

// CursorPosition returns the display row and column of a character
// offset in text. Columns are measured in terminal cells.
func CursorPosition(text string, offset int) skynote.Point {
	var p skynote.Point
	i := 0
	for _, c := range text {
		if i >= offset {
			break
		}
		if c == '\n' {
			p.Row++
			p.Col = 0
		} else {
			p.Col += runewidth.RuneWidth(c)
		}
		i++
	}
	return p
}

// Scroll returns a display offset that keeps cursor inside an area of
// the given size, moving the previous offset as little as possible.
func Scroll(cursor skynote.Point, offset, size skynote.Size) skynote.Size {
	if cursor.Row < offset.Rows {
		offset.Rows = cursor.Row
	}
	if size.Rows > 0 && cursor.Row >= offset.Rows+size.Rows {
		offset.Rows = cursor.Row - size.Rows + 1
	}
	if cursor.Col < offset.Cols {
		offset.Cols = cursor.Col
	}
	if size.Cols > 0 && cursor.Col >= offset.Cols+size.Cols {
		offset.Cols = cursor.Col - size.Cols + 1
	}
	return offset
}

// Clip returns the part of line visible from cell column start in an
// area width cells wide. A wide character cut by either edge is replaced
// by spaces for its visible cells, so later characters keep their columns.
func Clip(line string, start, width int) string {
	var b strings.Builder
	end := start + width
	col := 0
	for _, c := range line {
		if col >= end {
			break
		}
		w := runewidth.RuneWidth(c)
		if col >= start && col+w <= end {
			b.WriteRune(c)
		} else if visible := min(col+w, end) - max(col, start); visible > 0 {
			b.WriteString(strings.Repeat(" ", visible))
		}
		col += w
	}
	return b.String()
}

// Fit truncates or pads s to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// Center pads s on the left so that it is centered in width cells.
func Center(s string, width int) string {
	padding := (width - runewidth.StringWidth(s)) / 2
	if padding <= 0 {
		return s
	}
	return strings.Repeat(" ", padding) + s
}

// StatusLine describes the current note for the title bar.
func StatusLine(s skynote.Snapshot, renaming bool) string {
	edit := "off"
	if s.Editable {
		edit = "on"
	}
	line := fmt.Sprintf("edit: %s  -  lines: %d  -  character count: %d", edit, s.Lines, s.Characters)
	if renaming {
		line += "  -  editing tab name"
	}
	return line
}

// FirstVisible returns the index of the first of count list items to show
// in rows lines so that selected is visible.
func FirstVisible(selected, count, rows int) int {
	if rows <= 0 || count <= rows || selected < rows {
		return 0
	}
	return selected - rows + 1
}
