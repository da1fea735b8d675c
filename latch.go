// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package osminfo

// Latch is a boolean that can only move one way.  It starts untripped and
// once tripped it never resets, which is exactly the contract the ordered
// and multiple-versions findings need.
type Latch struct {
	tripped bool
}

// Trip trips the latch.  Tripping an already tripped latch is a no-op.
func (l *Latch) Trip() {
	l.tripped = true
}

// Tripped reports whether the latch has been tripped.
func (l *Latch) Tripped() bool {
	return l.tripped
}
