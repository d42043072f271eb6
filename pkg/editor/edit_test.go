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
	"testing"

	"pgregory.net/rapid"
)

func TestInsertIntoEmptyDocument(t *testing.T) {
	d := NewDocument("note", "")
	offset := InsertChar(d, 0, 'x')
	if d.Read() != "x" || offset != 1 {
		t.Errorf("Unexpected result of insertion: '%s' at %d", d.Read(), offset)
	}
}

func TestInsertChar(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		offset   int
		c        rune
		expected string
		cursor   int
	}{
		{"middle", "ac", 1, 'b', "abc", 2},
		{"start", "bc", 0, 'a', "abc", 1},
		{"end", "ab", 2, 'c', "abc", 3},
		{"clamped past end", "ab", 10, 'c', "abc", 3},
		{"clamped before start", "bc", -4, 'a', "abc", 1},
		{"multibyte", "日語", 1, '本', "日本語", 2},
		{"newline", "ab", 1, '\n', "a\nb", 2},
		{"control character", "ab", 1, '\x07', "ab", 1},
		{"tab", "ab", 5, '\t', "ab", 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := NewDocument("note", test.content)
			cursor := InsertChar(d, test.offset, test.c)
			if d.Read() != test.expected {
				t.Errorf("Unexpected content after insertion: '%s'", d.Read())
			}
			if cursor != test.cursor {
				t.Errorf("Unexpected cursor after insertion: %d", cursor)
			}
		})
	}
}

func TestInsertNewline(t *testing.T) {
	d := NewDocument("note", "abcd")
	cursor := InsertNewline(d, 2)
	if d.Read() != "ab\ncd" || cursor != 3 {
		t.Errorf("Unexpected result of newline: '%s' at %d", d.Read(), cursor)
	}
	if d.LineCount() != 2 {
		t.Errorf("Unexpected line count: %d", d.LineCount())
	}
}

func TestInsertText(t *testing.T) {
	d := NewDocument("note", "Four years ago")
	cursor := InsertText(d, 5, "score and seven ")
	expected := "Four score and seven years ago"
	if d.Read() != expected {
		t.Errorf("Unexpected remainder after insertion: '%s'", d.Read())
	}
	if cursor != 21 {
		t.Errorf("Unexpected cursor after insertion: %d", cursor)
	}
}

func TestDeleteBeforeCursor(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		offset   int
		expected string
		cursor   int
	}{
		{"at end", "abc", 3, "ab", 2},
		{"middle", "abc", 2, "ac", 1},
		{"at start", "abc", 0, "abc", 0},
		{"clamped past end", "abc", 8, "ab", 2},
		{"clamped before start", "abc", -2, "abc", 0},
		{"joins lines", "ab\ncd", 3, "abcd", 2},
		{"multibyte", "日本語", 2, "日語", 1},
		{"empty", "", 0, "", 0},
		{"empty keeps offset", "", 7, "", 7},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := NewDocument("note", test.content)
			cursor := DeleteBeforeCursor(d, test.offset)
			if d.Read() != test.expected {
				t.Errorf("Unexpected remainder after deletion: '%s'", d.Read())
			}
			if cursor != test.cursor {
				t.Errorf("Unexpected cursor after deletion: %d", cursor)
			}
		})
	}
}

func TestNewDocumentDropsControlCharacters(t *testing.T) {
	d := NewDocument("note", "a\tb\x00c\r\nd")
	if d.Read() != "abc\nd" {
		t.Errorf("Unexpected content: '%s'", d.Read())
	}
}

func TestInsertGrowsByOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := NewDocument("note", contentGenerator.Draw(t, "content"))
		before := d.RuneCount()
		offset := rapid.IntRange(0, before).Draw(t, "offset")
		c := rapid.SampledFrom([]rune("aZ9 é日!\n")).Draw(t, "c")
		cursor := InsertChar(d, offset, c)
		if d.RuneCount() != before+1 {
			t.Fatalf("count went from %d to %d", before, d.RuneCount())
		}
		if cursor != offset+1 {
			t.Fatalf("expected cursor %d, got %d", offset+1, cursor)
		}
	})
}

func TestInsertThenDeleteRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		content := contentGenerator.Draw(t, "content")
		d := NewDocument("note", content)
		offset := rapid.IntRange(0, d.RuneCount()).Draw(t, "offset")
		cursor := InsertChar(d, offset, 'x')
		cursor = DeleteBeforeCursor(d, cursor)
		if d.Read() != content || cursor != offset {
			t.Fatalf("got '%s' at %d", d.Read(), cursor)
		}
	})
}
