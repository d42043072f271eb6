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

// Package editor implements the core text editing functions of skynote.
// An editor manages an ordered collection of documents ("tabs") and a
// single cursor for the selected one. Cursor offsets always count
// characters (runes), never bytes.
// Content is only changed through the edit functions in this package,
// and cursor movement is computed by pure functions over a document's
// text, so all offset arithmetic lives here.
package editor
