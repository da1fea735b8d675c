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
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// optionPrefix is the dynamic namespace: any name under it is accepted
// without a whitelist check.
const optionPrefix = "header.option."

// knownValues is the fixed catalog of variables usable with --get.
var knownValues = []string{
	"file.name",
	"file.format",
	"file.compression",
	"file.size",
	"header.with_history",
	"header.option.generator",
	"header.option.osmosis_replication_base_url",
	"header.option.osmosis_replication_sequence_number",
	"header.option.osmosis_replication_timestamp",
	"header.option.pbf_dense_nodes",
	"header.option.timestamp",
	"header.option.version",
	"data.bbox",
	"data.timestamp.first",
	"data.timestamp.last",
	"data.objects_ordered",
	"data.multiple_versions",
	"data.crc32",
	"data.count.nodes",
	"data.count.ways",
	"data.count.relations",
	"data.count.changesets",
	"data.maxid.nodes",
	"data.maxid.ways",
	"data.maxid.relations",
	"data.maxid.changesets",
}

// showVariables prints the catalog, one variable per line.
func showVariables(w io.Writer) {
	for _, v := range knownValues {
		fmt.Fprintln(w, v)
	}
}

// validateModes rejects flag combinations that select two report views at
// once.
func validateModes(get string, jsonfmt bool) error {
	if get != "" && jsonfmt {
		return errors.New("you can not use --get/-g and --json/-j together")
	}

	return nil
}

// validateGet checks a requested variable before any input is opened.  An
// unknown variable and a data variable without extended mode are distinct
// configuration errors.
func validateGet(get string, extended bool) error {
	if !strings.HasPrefix(get, optionPrefix) && !slices.Contains(knownValues, get) {
		return fmt.Errorf(
			"unknown value %q for --get/-g option; use --show-variables/-G to see the list of known values",
			get)
	}

	if strings.HasPrefix(get, "data.") && !extended {
		return errors.New("you need to set --extended/-e for any 'data.*' variables to be available")
	}

	return nil
}
