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
	"fmt"
	"strings"
)

// DefaultTabName is the name pattern for tabs created by SelectNext.
// The verb is replaced with the index of the new tab.
const DefaultTabName = "Tab %d"

// Tabs is an ordered collection of documents with one selected document
// and one cursor. The cursor belongs to the collection, not to a
// document, and is reset whenever the selection changes.
// Tabs is never empty.
type Tabs struct {
	documents []*Document
	current   int
	cursor    int
	tabName   string
}

// NewTabs creates a collection holding only home. A tabName that isn't
// a pattern with exactly one %d is replaced by DefaultTabName.
func NewTabs(home *Document, tabName string) *Tabs {
	if !ValidTabName(tabName) {
		tabName = DefaultTabName
	}
	return &Tabs{
		documents: []*Document{home},
		tabName:   tabName,
	}
}

// ValidTabName reports whether pattern has exactly one verb and it is %d.
func ValidTabName(pattern string) bool {
	return strings.Count(pattern, "%d") == 1 && strings.Count(pattern, "%") == 1
}

// SelectNext selects the following tab, creating an empty one when the
// last tab is selected.
func (t *Tabs) SelectNext() {
	if t.current == len(t.documents)-1 {
		index := len(t.documents)
		t.documents = append(t.documents, NewDocument(fmt.Sprintf(t.tabName, index), ""))
		log.Debugf("created tab %d", index)
	}
	t.current++
	t.cursor = 0
}

// SelectPrevious selects the preceding tab. The first tab stays selected.
func (t *Tabs) SelectPrevious() {
	if t.current > 0 {
		t.current--
	}
	t.cursor = 0
}

// Select selects an existing tab.
func (t *Tabs) Select(index int) error {
	if index < 0 || index >= len(t.documents) {
		return fmt.Errorf("%w: no tab %d", ErrOutOfRange, index)
	}
	t.current = index
	t.cursor = 0
	return nil
}

// Current returns the selected document.
func (t *Tabs) Current() *Document {
	if len(t.documents) == 0 {
		panic(ErrEmptyCollection)
	}
	return t.documents[t.current]
}

func (t *Tabs) Index() int {
	return t.current
}

func (t *Tabs) Len() int {
	return len(t.documents)
}

// Names returns the tab names in order.
func (t *Tabs) Names() []string {
	names := make([]string, 0, len(t.documents))
	for _, d := range t.documents {
		names = append(names, d.Name())
	}
	return names
}

func (t *Tabs) Cursor() int {
	return t.cursor
}

// SetCursor stores offset, clamped into the selected document.
func (t *Tabs) SetCursor(offset int) {
	t.cursor = t.Current().clamp(offset)
}
