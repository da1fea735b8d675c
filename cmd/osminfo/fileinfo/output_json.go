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
	"encoding/json"
	"fmt"
	"time"

	"m4o.io/osminfo"
	"m4o.io/osminfo/model"
)

type jsonFile struct {
	Name        string `json:"name"`
	Format      string `json:"format"`
	Compression string `json:"compression"`

	// present, even at zero, for any named file
	Size *int64 `json:"size,omitempty"`
}

type jsonHeader struct {
	Boxes       []model.BoundingBox `json:"boxes"`
	WithHistory bool                `json:"with_history"`
	Option      model.Options       `json:"option"`
}

type jsonTimestamps struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

type jsonCounters struct {
	Changesets uint64 `json:"changesets"`
	Nodes      uint64 `json:"nodes"`
	Ways       uint64 `json:"ways"`
	Relations  uint64 `json:"relations"`
}

type jsonMaxIDs struct {
	Changesets model.ID `json:"changesets"`
	Nodes      model.ID `json:"nodes"`
	Ways       model.ID `json:"ways"`
	Relations  model.ID `json:"relations"`
}

type jsonData struct {
	BBox           model.BoundingBox `json:"bbox"`
	Timestamp      *jsonTimestamps   `json:"timestamp,omitempty"`
	ObjectsOrdered bool              `json:"objects_ordered"`

	// omitted, never null, when the finding is unknown
	MultipleVersions *bool `json:"multiple_versions,omitempty"`

	CRC32 string       `json:"crc32"`
	Count jsonCounters `json:"count"`
	MaxID jsonMaxIDs   `json:"maxid"`
}

type jsonReport struct {
	File   jsonFile   `json:"file"`
	Header jsonHeader `json:"header"`
	Data   *jsonData  `json:"data,omitempty"`
}

// jsonOutput collects the report and emits one self-contained document on
// Finish.
type jsonOutput struct {
	report jsonReport
}

func (j *jsonOutput) File(f osminfo.File) {
	j.report.File = jsonFile{
		Name:        f.Name,
		Format:      f.Format.String(),
		Compression: f.Compression.String(),
	}

	if f.Name != "" {
		size := f.Size()
		j.report.File.Size = &size
	}
}

func (j *jsonOutput) Header(h model.Header) {
	boxes := h.Boxes
	if boxes == nil {
		boxes = []model.BoundingBox{}
	}

	opts := h.Options
	if opts == nil {
		opts = model.Options{}
	}

	j.report.Header = jsonHeader{
		Boxes:       boxes,
		WithHistory: h.WithHistory,
		Option:      opts,
	}
}

func (j *jsonOutput) Data(h model.Header, info *osminfo.Accumulator) {
	data := &jsonData{
		BBox:           *info.Bounds(),
		ObjectsOrdered: info.Ordered(),
		CRC32:          fmt.Sprintf("%x", info.CRC32()),
		Count: jsonCounters{
			Changesets: info.Changesets(),
			Nodes:      info.Nodes(),
			Ways:       info.Ways(),
			Relations:  info.Relations(),
		},
		MaxID: jsonMaxIDs{
			Changesets: info.LargestChangesetID(),
			Nodes:      info.LargestNodeID(),
			Ways:       info.LargestWayID(),
			Relations:  info.LargestRelationID(),
		},
	}

	if first, ok := info.FirstTimestamp(); ok {
		last, _ := info.LastTimestamp()

		data.Timestamp = &jsonTimestamps{
			First: first.Format(time.RFC3339),
			Last:  last.Format(time.RFC3339),
		}
	}

	if info.Ordered() {
		mv := info.MultipleVersions()
		data.MultipleVersions = &mv
	}

	j.report.Data = data
}

func (j *jsonOutput) Finish() error {
	b, err := json.Marshal(j.report)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(b))

	return err
}
