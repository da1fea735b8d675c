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
	"os"
	"strings"
)

// Format is an enumeration of the entity container formats the tool reads.
type Format int

const (
	// XML is the OSM XML format, including its .osc change and .osh
	// history renditions.
	XML Format = iota

	// OPL is the line oriented OPL format.
	OPL
)

func (f Format) String() string {
	switch f {
	case OPL:
		return "OPL"
	default:
		return "XML"
	}
}

// Compression is an enumeration of the stream compressions the tool reads.
type Compression int

const (
	NoCompression Compression = iota
	Gzip
	Bzip2
	XZ
	Zstd
	LZ4
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case XZ:
		return "xz"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

// File describes one input file: where it is and what its path suffixes
// declare about format, compression and history content.  The declarations
// come solely from the name; nothing is read.
type File struct {
	Name        string
	Format      Format
	Compression Compression
	History     bool
}

var compressionSuffixes = []struct {
	suffix string
	c      Compression
}{
	{".gz", Gzip},
	{".bz2", Bzip2},
	{".xz", XZ},
	{".zst", Zstd},
	{".lz4", LZ4},
}

// DetectFile resolves format and compression from the suffix chain of name,
// e.g. region.osh.opl.gz.  Unknown suffixes fall back to uncompressed XML.
func DetectFile(name string) File {
	f := File{Name: name}

	rest := name
	for _, cs := range compressionSuffixes {
		if strings.HasSuffix(rest, cs.suffix) {
			f.Compression = cs.c
			rest = strings.TrimSuffix(rest, cs.suffix)

			break
		}
	}

	if strings.HasSuffix(rest, ".opl") {
		f.Format = OPL
		rest = strings.TrimSuffix(rest, ".opl")
	}

	if strings.HasSuffix(rest, ".osh") {
		f.History = true
	}

	return f
}

// Size returns the size of the file in bytes, or zero when the input is not
// a named file (stdin).
func (f File) Size() int64 {
	if f.Name == "" {
		return 0
	}

	fi, err := os.Stat(f.Name)
	if err != nil {
		return 0
	}

	return fi.Size()
}
