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

// Package commander converts user input and scripts into commands for skynote.
// Key bindings are written as lisp expressions such as (left) or
// (insert-char 97) and evaluated with golisp, so anything a key can do
// can also be done from a script.
// The commander also owns the mode of the application: browsing the tab
// list, editing a note, renaming a tab or choosing an export format.
package commander
