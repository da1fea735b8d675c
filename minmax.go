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

import (
	"golang.org/x/exp/constraints"
)

// MinOp tracks a running minimum.  Until the first update the tracked value
// is unset and behaves as if it were larger than any real value.
type MinOp[T constraints.Ordered] struct {
	val T
	set bool
}

// Update folds v into the minimum.
func (m *MinOp[T]) Update(v T) {
	if !m.set || v < m.val {
		m.val = v
		m.set = true
	}
}

// Value returns the minimum and whether any value was seen.
func (m *MinOp[T]) Value() (T, bool) {
	return m.val, m.set
}

// MaxOp tracks a running maximum.  Until the first update the tracked value
// is unset and behaves as if it were smaller than any real value.
type MaxOp[T constraints.Ordered] struct {
	val T
	set bool
}

// Update folds v into the maximum.
func (m *MaxOp[T]) Update(v T) {
	if !m.set || v > m.val {
		m.val = v
		m.set = true
	}
}

// Value returns the maximum and whether any value was seen.
func (m *MaxOp[T]) Value() (T, bool) {
	return m.val, m.set
}
