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

// Package export writes notes to files as styled HTML, plain HTML or text.
// All files for a directory are written as <dir>/<name>.<ext>.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("skynote.export")

type Format int

// Export formats, numbered as they are offered in the export popup.
const (
	StyledHTML Format = iota
	PlainHTML
	Text
)

func (f Format) String() string {
	switch f {
	case StyledHTML:
		return "styled html"
	case PlainHTML:
		return "plain html"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Extension returns the file extension used for f.
func (f Format) Extension() string {
	if f == Text {
		return ".txt"
	}
	return ".html"
}

var plainPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
</head>
<body>
<h1>{{.Name}}</h1>
<pre>{{.Text}}</pre>
</body>
</html>
`))

// A FileExporter writes notes into a directory.
type FileExporter struct {
	Dir    string
	Format Format
	Style  string // chroma style name used for StyledHTML
}

func New(dir string, format Format, style string) *FileExporter {
	return &FileExporter{Dir: dir, Format: format, Style: style}
}

// All returns one exporter per format, in popup order.
func All(dir string, style string) []*FileExporter {
	return []*FileExporter{
		New(dir, StyledHTML, style),
		New(dir, PlainHTML, style),
		New(dir, Text, style),
	}
}

// Export writes text to a file named after name and returns its path.
// The directory is created if needed.
func (x *FileExporter) Export(name, text string) (string, error) {
	var b []byte
	var err error
	switch x.Format {
	case StyledHTML:
		b, err = x.styled(name, text)
	case PlainHTML:
		b, err = plain(name, text)
	case Text:
		b = []byte(text)
	default:
		err = fmt.Errorf("unknown export format %d", x.Format)
	}
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(x.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(x.Dir, FileName(name)+x.Format.Extension())
	if err = os.WriteFile(path, b, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	log.Debugf("wrote %d bytes of %s to %s", len(b), x.Format, path)
	return path, nil
}

func (x *FileExporter) styled(name, text string) ([]byte, error) {
	lexer := lexers.Get("plaintext")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get(x.Style)
	formatter := chromahtml.New(chromahtml.Standalone(true), chromahtml.WithClasses(false))
	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("tokenising %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, it); err != nil {
		return nil, fmt.Errorf("formatting %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func plain(name, text string) ([]byte, error) {
	var buf bytes.Buffer
	err := plainPage.Execute(&buf, struct{ Name, Text string }{name, text})
	if err != nil {
		return nil, fmt.Errorf("formatting %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// FileName turns a tab name into a safe file name.
func FileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < ' ' {
			return -1
		}
		return r
	}, name)
	name = strings.Trim(name, ".")
	if name == "" {
		return "untitled"
	}
	return name
}
