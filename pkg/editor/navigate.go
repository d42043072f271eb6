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

// Cursor movement. These functions don't modify anything; they compute a
// new offset into content from an existing one. An offset beyond the
// content is an error and the offset is returned unchanged with it.

func checkOffset(text []rune, offset int) error {
	if offset < 0 || offset > len(text) {
		return outOfRange(offset, len(text))
	}
	return nil
}

func indexNewline(text []rune) int {
	for i, c := range text {
		if c == '\n' {
			return i
		}
	}
	return -1
}

func lastIndexNewline(text []rune) int {
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '\n' {
			return i
		}
	}
	return -1
}

// MoveLeft moves one character back, stopping at the start.
func MoveLeft(content string, offset int) (int, error) {
	text := []rune(content)
	if err := checkOffset(text, offset); err != nil {
		return offset, err
	}
	if offset > 0 {
		return offset - 1, nil
	}
	return 0, nil
}

// MoveRight moves one character forward, stopping at the end.
func MoveRight(content string, offset int) (int, error) {
	text := []rune(content)
	if err := checkOffset(text, offset); err != nil {
		return offset, err
	}
	if offset < len(text) {
		return offset + 1, nil
	}
	return len(text), nil
}

// MoveToNextLine moves to the end of the line below the cursor.
// On the last line the offset is unchanged.
// The column isn't preserved: repeated moves across lines of different
// lengths always land at line ends.
func MoveToNextLine(content string, offset int) (int, error) {
	text := []rune(content)
	if err := checkOffset(text, offset); err != nil {
		return offset, err
	}
	tail := text[offset:]
	d := indexNewline(tail)
	if d < 0 {
		return offset, nil
	}
	rest := tail[d+1:]
	n := indexNewline(rest)
	if n < 0 {
		n = len(rest)
	}
	return offset + d + n + 1, nil
}

// MoveToPreviousLine moves to the same column of the line above the
// cursor, or to the end of that line if it is shorter.
// On the first line the offset is unchanged.
func MoveToPreviousLine(content string, offset int) (int, error) {
	text := []rune(content)
	if err := checkOffset(text, offset); err != nil {
		return offset, err
	}
	head := text[0:offset]
	end := lastIndexNewline(head)
	if end < 0 {
		return offset, nil
	}
	col := offset - end - 1
	start := lastIndexNewline(head[0:end]) + 1
	if start+col > end {
		return end, nil
	}
	return start + col, nil
}
