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

// Package explorer opens directories in the host's file browser.
package explorer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skratchdot/open-golang/open"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("skynote.explorer")

// start launches the platform's default handler for a path without
// waiting for it.
var start = open.Start

// Open shows dir in the file browser, creating it first if needed.
// Open doesn't wait for the browser to exit.
func Open(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(abs, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", abs, err)
	}
	if err = start(abs); err != nil {
		return fmt.Errorf("opening %s: %w", abs, err)
	}
	log.Infof("opened %s", abs)
	return nil
}
