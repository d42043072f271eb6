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

package commander

import (
	"errors"
	"fmt"

	"github.com/steelseries/golisp"

	skynote "github.com/timburks/skynote/pkg/types"
)

// golisp primitives are global, so they act on the commander that most
// recently evaluated something.
var active *Commander

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

func init() {
	golisp.MakePrimitiveFunction("left", "0", command(skynote.MoveLeft))
	golisp.MakePrimitiveFunction("right", "0", command(skynote.MoveRight))
	golisp.MakePrimitiveFunction("up", "0", command(skynote.MoveLineUp))
	golisp.MakePrimitiveFunction("down", "0", command(skynote.MoveLineDown))
	golisp.MakePrimitiveFunction("newline", "0", command(skynote.InsertNewline))
	golisp.MakePrimitiveFunction("backspace", "0", command(skynote.DeleteBackward))
	golisp.MakePrimitiveFunction("next-tab", "0", command(skynote.NextTab))
	golisp.MakePrimitiveFunction("previous-tab", "0", command(skynote.PreviousTab))
	golisp.MakePrimitiveFunction("insert-char", "1", InsertCharImpl)
	golisp.MakePrimitiveFunction("insert-text", "1", InsertTextImpl)
	golisp.MakePrimitiveFunction("select-tab", "1", SelectTabImpl)
	golisp.MakePrimitiveFunction("rename", "1", RenameImpl)
	golisp.MakePrimitiveFunction("export", "1", ExportImpl)
	golisp.MakePrimitiveFunction("explore", "0", ExploreImpl)
	golisp.MakePrimitiveFunction("open-note", "0", mode(skynote.ModeEdit))
	golisp.MakePrimitiveFunction("close-note", "0", mode(skynote.ModeList))
	golisp.MakePrimitiveFunction("export-mode", "0", mode(skynote.ModeExport))
	golisp.MakePrimitiveFunction("rename-mode", "0", RenameModeImpl)
	golisp.MakePrimitiveFunction("quit", "0", mode(skynote.ModeQuit))
	golisp.MakePrimitiveFunction("text", "0", TextImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
	golisp.MakePrimitiveFunction("current-tab", "0", CurrentTabImpl)
	golisp.MakePrimitiveFunction("tab-count", "0", TabCountImpl)
}

func golispParseAndEval(command string) (string, error) {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return "", err
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}

func current() (*Commander, error) {
	if active == nil {
		return nil, errors.New("no commander is active")
	}
	return active, nil
}

func cursor(c *Commander) *golisp.Data {
	return golisp.IntegerWithValue(int64(c.editor.Snapshot().Cursor))
}

// command wraps an editor command. It evaluates to the new cursor offset.
func command(kind skynote.CommandKind) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c, err := current()
		if err != nil {
			return nil, err
		}
		if err = c.editor.Perform(skynote.Command{Kind: kind}); err != nil {
			return nil, err
		}
		return cursor(c), nil
	}
}

// mode wraps a mode change. It evaluates to the new mode's name.
func mode(m int) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c, err := current()
		if err != nil {
			return nil, err
		}
		c.mode = m
		return golisp.StringWithValue(c.getModeName()), nil
	}
}

func integerArgument(name string, args *golisp.Data) (int, error) {
	value := golisp.Car(args)
	if !golisp.IntegerP(value) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	return int(golisp.IntegerValue(value)), nil
}

func stringArgument(name string, args *golisp.Data) (string, error) {
	value := golisp.Car(args)
	if !golisp.StringP(value) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(value), nil
}

// (insert-char code) inserts the character with the given code point.
func InsertCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	code, err := integerArgument("insert-char", args)
	if err != nil {
		return nil, err
	}
	if err = c.editor.Perform(skynote.Command{Kind: skynote.InsertChar, Char: rune(code)}); err != nil {
		return nil, err
	}
	return cursor(c), nil
}

// (insert-text "text")
func InsertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	text, err := stringArgument("insert-text", args)
	if err != nil {
		return nil, err
	}
	if err = c.editor.InsertText(text); err != nil {
		return nil, err
	}
	return cursor(c), nil
}

// (select-tab index)
func SelectTabImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	index, err := integerArgument("select-tab", args)
	if err != nil {
		return nil, err
	}
	if err = c.editor.SelectTab(index); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(index)), nil
}

// (rename "name") renames the current tab.
func RenameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	name, err := stringArgument("rename", args)
	if err != nil {
		return nil, err
	}
	c.editor.Rename(name)
	return golisp.StringWithValue(name), nil
}

// (rename-mode) starts editing the current tab's name.
func RenameModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	s := c.editor.Snapshot()
	c.renameText = s.TabNames[s.CurrentTab]
	c.mode = skynote.ModeRename
	return golisp.StringWithValue(c.getModeName()), nil
}

// (export n) exports the current tab with the nth exporter and closes
// the export popup. It evaluates to the path written.
func ExportImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	n, err := integerArgument("export", args)
	if err != nil {
		return nil, err
	}
	if n < 0 || n >= len(c.options.Exporters) {
		return nil, fmt.Errorf("no export format %d", n)
	}
	if c.mode == skynote.ModeExport {
		c.mode = skynote.ModeEdit
	}
	path, err := c.editor.Export(c.options.Exporters[n])
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}
	c.message = "exported to " + path
	return golisp.StringWithValue(path), nil
}

// (explore) opens the export directory in the file browser.
func ExploreImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	if c.options.Explore == nil {
		return nil, errors.New("no file browser is available")
	}
	if err = c.options.Explore(c.options.ExportDir); err != nil {
		return nil, err
	}
	c.message = "opened " + c.options.ExportDir
	return golisp.StringWithValue(c.options.ExportDir), nil
}

// (text) evaluates to the text of the current tab.
func TextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.Snapshot().Text), nil
}

// (cursor)
func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return cursor(c), nil
}

// (current-tab)
func CurrentTabImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.Snapshot().CurrentTab)), nil
}

// (tab-count)
func TabCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(len(c.editor.Snapshot().TabNames))), nil
}
