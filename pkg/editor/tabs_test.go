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
	"errors"
	"testing"

	"pgregory.net/rapid"

	skynote "github.com/timburks/skynote/pkg/types"
)

func TestSelectNextCreatesTab(t *testing.T) {
	tabs := NewTabs(NewDocument("home", ""), "")
	tabs.SelectNext()
	if tabs.Len() != 2 || tabs.Index() != 1 {
		t.Errorf("Unexpected tabs after next: %d tabs, index %d", tabs.Len(), tabs.Index())
	}
	if tabs.Current().Read() != "" || tabs.Current().Name() != "Tab 1" {
		t.Errorf("Unexpected new tab: '%s'", tabs.Current().Name())
	}
}

func TestSelectNextExistingTab(t *testing.T) {
	tabs := NewTabs(NewDocument("home", ""), "")
	tabs.SelectNext()
	tabs.SelectNext()
	tabs.SelectPrevious()
	tabs.SelectPrevious()
	tabs.SelectNext()
	if tabs.Len() != 3 || tabs.Index() != 1 {
		t.Errorf("Unexpected tabs: %d tabs, index %d", tabs.Len(), tabs.Index())
	}
}

func TestSelectPreviousAtStart(t *testing.T) {
	tabs := NewTabs(NewDocument("home", "hello"), "")
	tabs.SetCursor(3)
	tabs.SelectPrevious()
	if tabs.Len() != 1 || tabs.Index() != 0 || tabs.Cursor() != 0 {
		t.Errorf("Unexpected tabs: %d tabs, index %d, cursor %d", tabs.Len(), tabs.Index(), tabs.Cursor())
	}
}

func TestSetCursorClamps(t *testing.T) {
	tabs := NewTabs(NewDocument("home", "hello"), "")
	tabs.SetCursor(99)
	if tabs.Cursor() != 5 {
		t.Errorf("Unexpected cursor: %d", tabs.Cursor())
	}
	tabs.SetCursor(-1)
	if tabs.Cursor() != 0 {
		t.Errorf("Unexpected cursor: %d", tabs.Cursor())
	}
}

func TestSelect(t *testing.T) {
	tabs := NewTabs(NewDocument("home", ""), "Page %d")
	tabs.SelectNext()
	tabs.SetCursor(0)
	if err := tabs.Select(0); err != nil {
		t.Errorf("Select failed: %+v", err)
	}
	if err := tabs.Select(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Unexpected error: %+v", err)
	}
	if names := tabs.Names(); names[1] != "Page 1" {
		t.Errorf("Unexpected names: %+v", names)
	}
}

func TestInvalidTabNameFallsBack(t *testing.T) {
	for _, pattern := range []string{"Tab", "Tab %s", "%d of %d", "100%% %d", "%x"} {
		tabs := NewTabs(NewDocument("home", ""), pattern)
		tabs.SelectNext()
		if name := tabs.Current().Name(); name != "Tab 1" {
			t.Errorf("Unexpected name for pattern '%s': '%s'", pattern, name)
		}
	}
	e := NewEditor(Options{TabName: "Note"})
	perform(t, e, skynote.Command{Kind: skynote.NextTab})
	if s := e.Snapshot(); s.TabNames[1] != "Tab 1" {
		t.Errorf("Unexpected tab names: %+v", s.TabNames)
	}
}

func TestValidTabName(t *testing.T) {
	tests := []struct {
		pattern string
		valid   bool
	}{
		{"Tab %d", true},
		{"%d", true},
		{"", false},
		{"Tab", false},
		{"%d-%d", false},
		{"%s %d", false},
		{"50%% %d", false},
	}
	for _, test := range tests {
		if ValidTabName(test.pattern) != test.valid {
			t.Errorf("Unexpected validity of '%s'", test.pattern)
		}
	}
}

func TestEmptyCollectionPanics(t *testing.T) {
	defer func() {
		r := recover()
		if err, ok := r.(error); !ok || !errors.Is(err, ErrEmptyCollection) {
			t.Errorf("Unexpected recovery: %+v", r)
		}
	}()
	tabs := &Tabs{}
	tabs.Current()
}

func TestSwitchResetsCursor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tabs := NewTabs(NewDocument("home", "some text\nmore text"), "")
		steps := rapid.SliceOfN(rapid.Bool(), 1, 20).Draw(t, "steps")
		for _, next := range steps {
			tabs.SetCursor(rapid.IntRange(0, 20).Draw(t, "cursor"))
			if next {
				tabs.SelectNext()
			} else {
				tabs.SelectPrevious()
			}
			if tabs.Cursor() != 0 {
				t.Fatalf("cursor is %d after switching", tabs.Cursor())
			}
		}
	})
}

func TestTabGrowth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(t, "n")
		k := rapid.IntRange(0, 10).Draw(t, "k")
		tabs := NewTabs(NewDocument("home", "x"), "")
		for i := 1; i < n; i++ {
			tabs.SelectNext()
		}
		for i := 0; i < k; i++ {
			tabs.SelectNext()
		}
		if tabs.Len() != n+k {
			t.Fatalf("expected %d tabs, got %d", n+k, tabs.Len())
		}
		for i := n; i < n+k; i++ {
			if tabs.documents[i].RuneCount() != 0 {
				t.Fatalf("tab %d is not empty", i)
			}
		}
	})
}
