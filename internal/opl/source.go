package opl

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/destel/rill"

	"m4o.io/osminfo/model"
)

// Source is a pull-based entity stream over OPL input.  Lines are read
// sequentially, parsed in ordered concurrent batches, and handed out one
// entity at a time in file order.
type Source struct {
	header  model.Header
	out     <-chan rill.Try[[]model.Entity]
	pending []model.Entity
	cancel  context.CancelFunc
}

// NewSource begins reading OPL entities from r.  OPL carries no header
// block, so the declared header comes from the caller.
func NewSource(ctx context.Context, r io.Reader, header model.Header, batchSize, ncpu int) *Source {
	ctx, cancel := context.WithCancel(ctx)

	lines := rill.FromSeq2(generate(ctx, r))
	batches := rill.Batch(lines, batchSize, -1)
	parsed := rill.OrderedMap(batches, ncpu, parseBatch)

	return &Source{header: header, out: parsed, cancel: cancel}
}

// Header returns the declared header metadata.
func (s *Source) Header() model.Header {
	return s.header
}

// Decode returns the next entity in file order, or io.EOF when the stream
// is exhausted.
func (s *Source) Decode() (model.Entity, error) {
	for len(s.pending) == 0 {
		t, more := <-s.out
		if !more {
			return nil, io.EOF
		}

		if t.Error != nil {
			return nil, t.Error
		}

		s.pending = t.Value
	}

	e := s.pending[0]
	s.pending = s.pending[1:]

	return e, nil
}

// Close cancels the parse pipeline and releases its goroutines.
func (s *Source) Close() error {
	s.cancel()
	rill.Drain(s.out)

	return nil
}

// generate creates an iterator that yields raw lines read off the reader.
func generate(ctx context.Context, r io.Reader) func(yield func(line string, err error) bool) {
	return func(yield func(line string, err error) bool) {
		scanner := bufio.NewScanner(r)
		// ways through dense areas produce very long lines
		scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if !yield(scanner.Text(), nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			slog.Error("unable to read line", "error", err)
			yield("", err)
		}
	}
}

// parseBatch parses a batch of lines, dropping blanks and comments.
func parseBatch(lines []string) ([]model.Entity, error) {
	entities := make([]model.Entity, 0, len(lines))

	for _, line := range lines {
		e, err := ParseLine(line)
		if err != nil {
			slog.Error("unable to parse line", "error", err)

			return nil, err
		}

		if e != nil {
			entities = append(entities, e)
		}
	}

	return entities, nil
}
