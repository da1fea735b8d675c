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
	"context"
	"io"

	"m4o.io/osminfo/internal/opl"
	"m4o.io/osminfo/internal/osmxml"
	"m4o.io/osminfo/internal/unpack"
	"m4o.io/osminfo/model"
)

// Source is a pull-based stream of entities read from one input, exhaustible
// exactly once.  Decode reports io.EOF when the stream ends.
type Source interface {
	// Header returns the metadata the file declares about itself.
	Header() model.Header

	// Decode returns the next entity in file order.
	Decode() (model.Entity, error)

	// Close releases the source.  The underlying reader belongs to the
	// caller.
	Close() error
}

type wrappedSource struct {
	Source
	closer io.Closer
}

func (w wrappedSource) Close() error {
	if err := w.Source.Close(); err != nil {
		return err
	}

	return w.closer.Close()
}

// Open creates a source for the file, reading its entities from r.  The
// stream is decompressed according to the file's declared compression and
// parsed according to its declared format.
func Open(ctx context.Context, r io.Reader, f File, opts ...SourceOption) (Source, error) {
	cfg := defaultSourceConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	rc, err := unpack.NewReader(r, f.Compression.String())
	if err != nil {
		return nil, err
	}

	header := model.Header{WithHistory: f.History}

	var src Source

	switch f.Format {
	case OPL:
		src = opl.NewSource(ctx, rc, header, cfg.batchSize, int(cfg.nCPU))
	default:
		src, err = osmxml.NewSource(ctx, rc, header)
		if err != nil {
			_ = rc.Close()

			return nil, err
		}
	}

	return wrappedSource{Source: src, closer: rc}, nil
}
