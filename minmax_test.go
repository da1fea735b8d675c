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

package osminfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/osminfo"
)

func TestMinOp(t *testing.T) {
	var m osminfo.MinOp[int64]

	_, ok := m.Value()
	assert.False(t, ok)

	m.Update(5)
	m.Update(-3)
	m.Update(7)

	v, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, int64(-3), v)
}

func TestMaxOp(t *testing.T) {
	var m osminfo.MaxOp[int64]

	_, ok := m.Value()
	assert.False(t, ok)

	m.Update(5)
	m.Update(-3)
	m.Update(2)

	v, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, int64(5), v)
}

func TestMaxOp_NegativeOnly(t *testing.T) {
	var m osminfo.MaxOp[int64]

	m.Update(-1)
	m.Update(-9)

	v, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, int64(-1), v)
}
