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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/timburks/skynote/pkg/commander"
	"github.com/timburks/skynote/pkg/config"
	"github.com/timburks/skynote/pkg/editor"
	"github.com/timburks/skynote/pkg/explorer"
	"github.com/timburks/skynote/pkg/export"
	"github.com/timburks/skynote/pkg/screen"
	skynote "github.com/timburks/skynote/pkg/types"
)

// Version is set at build time with -ldflags.
var Version = "(dev) v0.0.0"

var log = commonlog.GetLogger("skynote")

func main() {
	configPath := flag.String("config", config.DefaultPath(), "configuration file")
	script := flag.String("eval", "", "evaluate a script and exit")
	version := flag.Bool("version", false, "print the version and exit")
	verbose := flag.Int("verbose", -1, "log verbosity, overrides the configuration")
	debug := flag.Bool("debug", false, "show each key event in the message bar")
	flag.Parse()

	if *version {
		fmt.Printf("skynote %s\n", Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *verbose >= 0 {
		cfg.Verbosity = *verbose
	}

	// The screen owns the terminal, so logs go to a file.
	logFile := config.ExpandHome(cfg.LogFile)
	commonlog.Configure(cfg.Verbosity, &logFile)

	// The editor manages all text manipulation.
	e := editor.NewEditor(editor.Options{
		HomeName:     cfg.HomeName,
		HomeEditable: cfg.HomeEditable,
		TabName:      cfg.TabName,
	})

	exportDir := config.ExpandHome(cfg.ExportDir)
	exporters := make([]skynote.Exporter, 0)
	for _, x := range export.All(exportDir, cfg.Style) {
		exporters = append(exporters, x)
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, commander.Options{
		Exporters: exporters,
		ExportDir: exportDir,
		Explore:   explorer.Open,
		TabWidth:  cfg.TabWidth,
	})

	c.SetDebug(*debug)

	if *script != "" {
		// Run a script and exit.
		values, err := c.ParseEvalFile(*script)
		for _, value := range values {
			fmt.Println(value)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer s.Close()
	log.Infof("started with %d tabs", len(e.Snapshot().TabNames))

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e.Snapshot(), c)
		if err = c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Error(err.Error())
		}
	}
}
