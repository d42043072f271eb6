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

// A Document is one named text buffer.
type Document struct {
	name string
	text []rune
}

// NewDocument creates a document. Characters in text that documents
// can't hold are dropped.
func NewDocument(name, text string) *Document {
	d := &Document{name: name, text: make([]rune, 0)}
	InsertText(d, 0, text)
	return d
}

func (d *Document) Name() string {
	return d.name
}

func (d *Document) SetName(name string) {
	d.name = name
}

// Read returns the current content.
func (d *Document) Read() string {
	return string(d.text)
}

// RuneCount returns the number of characters in the document.
func (d *Document) RuneCount() int {
	return len(d.text)
}

// LineCount returns the number of newline-separated lines. An empty
// document has one line.
func (d *Document) LineCount() int {
	n := 1
	for _, c := range d.text {
		if c == '\n' {
			n++
		}
	}
	return n
}

// clamp moves offset into [0, RuneCount].
func (d *Document) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(d.text) {
		return len(d.text)
	}
	return offset
}

func (d *Document) insert(offset int, c rune) {
	line := make([]rune, 0, len(d.text)+1)
	line = append(line, d.text[0:offset]...)
	line = append(line, c)
	line = append(line, d.text[offset:]...)
	d.text = line
}

// delete removes the character at offset and returns it.
func (d *Document) delete(offset int) rune {
	c := d.text[offset]
	d.text = append(d.text[0:offset], d.text[offset+1:]...)
	return c
}
