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
	"unicode"
)

// These edit functions are the only way document content changes.
// Each accepts any offset, clamps it into [0, RuneCount], and returns
// the cursor offset after the edit.

// InsertChar inserts c at offset and returns the offset after it.
// A newline is inserted as with InsertNewline. Control characters are
// ignored and the clamped offset is returned.
func InsertChar(d *Document, offset int, c rune) int {
	if c == '\n' {
		return InsertNewline(d, offset)
	}
	offset = d.clamp(offset)
	if !unicode.IsPrint(c) {
		return offset
	}
	d.insert(offset, c)
	return offset + 1
}

// InsertNewline inserts a line break at offset.
func InsertNewline(d *Document, offset int) int {
	offset = d.clamp(offset)
	d.insert(offset, '\n')
	return offset + 1
}

// InsertText inserts text one character at a time.
func InsertText(d *Document, offset int, text string) int {
	offset = d.clamp(offset)
	for _, c := range text {
		offset = InsertChar(d, offset, c)
	}
	return offset
}

// DeleteBeforeCursor removes the character to the left of offset.
// An empty document is left alone and offset is returned as given.
func DeleteBeforeCursor(d *Document, offset int) int {
	if len(d.text) == 0 {
		return offset
	}
	offset = d.clamp(offset)
	if offset == 0 {
		return 0
	}
	d.delete(offset - 1)
	return offset - 1
}
