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
	"fmt"
)

var (
	// ErrOutOfRange is returned when an offset lies outside its document.
	ErrOutOfRange = errors.New("offset out of range")

	// ErrEmptyCollection signals a tab collection with no documents.
	// It is only ever raised with panic.
	ErrEmptyCollection = errors.New("tab collection has no documents")
)

func outOfRange(offset, count int) error {
	return fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, offset, count)
}
