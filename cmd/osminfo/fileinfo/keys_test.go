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

package fileinfo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowVariables(t *testing.T) {
	buf := &bytes.Buffer{}
	showVariables(buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, knownValues, lines)
}

func TestValidateGet(t *testing.T) {
	test_cases := []struct {
		name     string
		get      string
		extended bool
		ok       bool
	}{
		{"file variable", "file.size", false, true},
		{"header variable", "header.with_history", false, true},
		{"known option", "header.option.generator", false, true},
		{"arbitrary option", "header.option.some_custom_key", false, true},
		{"data variable extended", "data.crc32", true, true},
		{"data variable not extended", "data.crc32", false, false},
		{"unknown variable", "data.nonsense", true, false},
		{"unknown top level", "bogus", false, false},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateGet(tc.get, tc.extended)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateModes(t *testing.T) {
	assert.NoError(t, validateModes("", false))
	assert.NoError(t, validateModes("", true))
	assert.NoError(t, validateModes("file.size", false))

	err := validateModes("file.size", true)
	assert.ErrorContains(t, err, "you can not use --get/-g and --json/-j together")
}

func TestValidateGet_ErrorMessages(t *testing.T) {
	err := validateGet("bogus", true)
	assert.ErrorContains(t, err, "unknown value")
	assert.ErrorContains(t, err, "--show-variables/-G")

	err = validateGet("data.crc32", false)
	assert.ErrorContains(t, err, "--extended/-e")
}
