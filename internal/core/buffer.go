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

// Package core holds small shared helpers for the readers and the analyzer.
package core

import (
	"bytes"
	"sync"
)

var buffers = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// PooledBuffer is a bytes.Buffer drawn from a shared pool.  Call Close to
// return it to the pool; the buffer must not be used afterwards.
type PooledBuffer struct {
	*bytes.Buffer
}

// NewPooledBuffer obtains an empty buffer from the pool.
func NewPooledBuffer() *PooledBuffer {
	b := buffers.Get().(*bytes.Buffer)
	b.Reset()

	return &PooledBuffer{Buffer: b}
}

// Close returns the buffer to the pool.
func (p *PooledBuffer) Close() error {
	buffers.Put(p.Buffer)
	p.Buffer = nil

	return nil
}
