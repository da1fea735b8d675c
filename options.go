// Copyright 2017-25 the original author or authors.
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
	"runtime"
)

const (
	// DefaultBatchSize is the default number of lines handed to one
	// concurrent parse.
	DefaultBatchSize = 4096
)

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// sourceConfig provides optional configuration parameters for Source
// construction.
type sourceConfig struct {
	batchSize int    // lines per concurrent parse
	nCPU      uint16 // the number of CPUs to use for background parsing
}

// SourceOption configures how we set up the source.
type SourceOption func(*sourceConfig)

// WithBatchSize lets you set the number of lines handed to one concurrent
// parse.
func WithBatchSize(s int) SourceOption {
	return func(o *sourceConfig) {
		o.batchSize = s
	}
}

// WithMaxCPU lets you set the number of CPUs to use for background parsing.
func WithMaxCPU(n uint16) SourceOption {
	return func(o *sourceConfig) {
		o.nCPU = n
	}
}

// defaultSourceConfig provides a default configuration for sources.
var defaultSourceConfig = sourceConfig{
	batchSize: DefaultBatchSize,
	nCPU:      DefaultNCpu(),
}
