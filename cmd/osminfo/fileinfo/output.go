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
	"io"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"

	"m4o.io/osminfo"
	"m4o.io/osminfo/model"
)

var out io.Writer = os.Stdout

// Output is one view over the report inputs.  Every view receives the same
// file metadata, header metadata and finalized scan result, and every view
// must derive identical values for the same field.
type Output interface {
	// File renders the file section.
	File(f osminfo.File)

	// Header renders the declared header section.
	Header(h model.Header)

	// Data renders the observed data section.  It is only called after an
	// extended scan has exhausted the stream.
	Data(h model.Header, info *osminfo.Accumulator)

	// Finish completes the report.
	Finish() error
}

// newOutput selects the view once, at startup, based on the mode flags.
func newOutput(jsonfmt bool, get string) Output {
	switch {
	case jsonfmt:
		return &jsonOutput{}
	case get != "":
		return &simpleOutput{get: get}
	default:
		return &humanOutput{}
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

type humanOutput struct{}

func (*humanOutput) File(f osminfo.File) {
	fmt.Fprintf(out, "File:\n")
	fmt.Fprintf(out, "  Name: %s\n", f.Name)
	fmt.Fprintf(out, "  Format: %s\n", f.Format)
	fmt.Fprintf(out, "  Compression: %s\n", f.Compression)

	if f.Name != "" {
		size := f.Size()
		fmt.Fprintf(out, "  Size: %d (%s)\n", size, humanize.Bytes(uint64(size)))
	}
}

func (*humanOutput) Header(h model.Header) {
	fmt.Fprintf(out, "Header:\n")

	fmt.Fprintf(out, "  Bounding boxes:\n")

	for i := range h.Boxes {
		fmt.Fprintf(out, "    %s\n", h.Boxes[i].String())
	}

	fmt.Fprintf(out, "  With history: %s\n", yesNo(h.WithHistory))

	fmt.Fprintf(out, "  Options:\n")

	for _, opt := range h.Options {
		fmt.Fprintf(out, "    %s=%s\n", opt.Key, opt.Value)
	}
}

func (*humanOutput) Data(h model.Header, info *osminfo.Accumulator) {
	fmt.Fprintf(out, "Data:\n")
	fmt.Fprintf(out, "  Bounding box: %s\n", info.Bounds().String())

	if first, ok := info.FirstTimestamp(); ok {
		last, _ := info.LastTimestamp()

		fmt.Fprintf(out, "  Timestamps:\n")
		fmt.Fprintf(out, "    First: %s\n", first.Format(time.RFC3339))
		fmt.Fprintf(out, "    Last: %s\n", last.Format(time.RFC3339))
	}

	fmt.Fprintf(out, "  Objects ordered (by type and id): %s\n", yesNo(info.Ordered()))

	if info.Ordered() {
		fmt.Fprintf(out, "  Multiple versions of same object: %s\n", yesNo(info.MultipleVersions()))

		if info.MultipleVersions() != h.WithHistory {
			fmt.Fprintf(out, "    WARNING! This is different from the setting in the header.\n")
		}
	} else {
		fmt.Fprintf(out, "  Multiple versions of same object: unknown (because objects in file are unordered)\n")
	}

	fmt.Fprintf(out, "  CRC32: %x\n", info.CRC32())

	fmt.Fprintf(out, "  Number of changesets: %d\n", info.Changesets())
	fmt.Fprintf(out, "  Number of nodes: %d\n", info.Nodes())
	fmt.Fprintf(out, "  Number of ways: %d\n", info.Ways())
	fmt.Fprintf(out, "  Number of relations: %d\n", info.Relations())

	fmt.Fprintf(out, "  Largest changeset ID: %d\n", info.LargestChangesetID())
	fmt.Fprintf(out, "  Largest node ID: %d\n", info.LargestNodeID())
	fmt.Fprintf(out, "  Largest way ID: %d\n", info.LargestWayID())
	fmt.Fprintf(out, "  Largest relation ID: %d\n", info.LargestRelationID())
}

func (*humanOutput) Finish() error {
	return nil
}
