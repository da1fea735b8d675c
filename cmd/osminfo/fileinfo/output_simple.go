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
	"fmt"
	"strings"
	"time"

	"m4o.io/osminfo"
	"m4o.io/osminfo/model"
)

// simpleOutput prints exactly the one value selected by a validated
// variable, raw and unlabeled.
type simpleOutput struct {
	get string
}

func (s *simpleOutput) File(f osminfo.File) {
	switch s.get {
	case "file.name":
		fmt.Fprintln(out, f.Name)
	case "file.format":
		fmt.Fprintln(out, f.Format)
	case "file.compression":
		fmt.Fprintln(out, f.Compression)
	case "file.size":
		fmt.Fprintln(out, f.Size())
	}
}

func (s *simpleOutput) Header(h model.Header) {
	if s.get == "header.with_history" {
		fmt.Fprintln(out, yesNo(h.WithHistory))
	}

	name, ok := strings.CutPrefix(s.get, optionPrefix)
	if !ok {
		return
	}

	// absent options print nothing; duplicates print every occurrence
	for _, opt := range h.Options {
		if opt.Key == name {
			fmt.Fprintln(out, opt.Value)
		}
	}
}

func (s *simpleOutput) Data(h model.Header, info *osminfo.Accumulator) {
	switch s.get {
	case "data.bbox":
		fmt.Fprintln(out, info.Bounds().String())
	case "data.timestamp.first":
		if first, ok := info.FirstTimestamp(); ok {
			fmt.Fprintln(out, first.Format(time.RFC3339))
		} else {
			fmt.Fprintln(out)
		}
	case "data.timestamp.last":
		if last, ok := info.LastTimestamp(); ok {
			fmt.Fprintln(out, last.Format(time.RFC3339))
		} else {
			fmt.Fprintln(out)
		}
	case "data.objects_ordered":
		fmt.Fprintln(out, yesNo(info.Ordered()))
	case "data.multiple_versions":
		if info.Ordered() {
			fmt.Fprintln(out, yesNo(info.MultipleVersions()))
		} else {
			fmt.Fprintln(out, "unknown")
		}
	case "data.crc32":
		fmt.Fprintf(out, "%x\n", info.CRC32())
	case "data.count.changesets":
		fmt.Fprintln(out, info.Changesets())
	case "data.count.nodes":
		fmt.Fprintln(out, info.Nodes())
	case "data.count.ways":
		fmt.Fprintln(out, info.Ways())
	case "data.count.relations":
		fmt.Fprintln(out, info.Relations())
	case "data.maxid.changesets":
		fmt.Fprintln(out, info.LargestChangesetID())
	case "data.maxid.nodes":
		fmt.Fprintln(out, info.LargestNodeID())
	case "data.maxid.ways":
		fmt.Fprintln(out, info.LargestWayID())
	case "data.maxid.relations":
		fmt.Fprintln(out, info.LargestRelationID())
	}
}

func (s *simpleOutput) Finish() error {
	return nil
}
