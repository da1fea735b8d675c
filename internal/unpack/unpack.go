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

// Package unpack turns a possibly compressed input stream into a plain
// reader, one compression scheme per case.
package unpack

import (
	"compress/bzip2"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

var ErrUnknownCompression = errors.New("unknown compression")

type nopCloser struct {
	io.Reader
}

func (nopCloser) Close() error {
	return nil
}

type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()

	return nil
}

// NewReader wraps r with the decompressor named by compression: none, gzip,
// bzip2, xz, zstd or lz4.
func NewReader(r io.Reader, compression string) (io.ReadCloser, error) {
	switch compression {
	case "none":
		return nopCloser{r}, nil
	case "gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}

		return zr, nil
	case "bzip2":
		return nopCloser{bzip2.NewReader(r)}, nil
	case "xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}

		return nopCloser{xr}, nil
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}

		return zstdCloser{zr}, nil
	case "lz4":
		return nopCloser{lz4.NewReader(r)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, compression)
	}
}
