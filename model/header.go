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

package model

import (
	"bytes"
	"encoding/json"
)

// Option is a single free-form header setting, such as the generator or a
// replication marker.
type Option struct {
	Key   string
	Value string
}

// Options is the ordered list of header settings.  Duplicate keys are
// possible and all of them are preserved in arrival order.
type Options []Option

// Get returns the value of the first option with the given key.
func (o Options) Get(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}

	return "", false
}

// MarshalJSON renders the options as a JSON object that keeps arrival order
// and duplicate keys, which a Go map cannot express.
func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(opt.Key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(opt.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Header is the file-level metadata declared by an OpenStreetMap data file,
// as opposed to what a scan of its entities actually observes.
type Header struct {
	Boxes       []BoundingBox
	WithHistory bool
	Options     Options
}
