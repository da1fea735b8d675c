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
	"encoding/binary"
	"hash"
	"hash/crc32"
	"sort"

	"m4o.io/osminfo/internal/core"
	"m4o.io/osminfo/model"
)

// checksum accumulates a CRC-32 over the canonical encodings of entities in
// stream order.  Two streams that hold the same entities in a different order
// produce different sums.
type checksum struct {
	crc hash.Hash32
}

func newChecksum() checksum {
	return checksum{crc: crc32.NewIEEE()}
}

func (c checksum) Sum32() uint32 {
	return c.crc.Sum32()
}

func (c checksum) update(e model.Entity) {
	buf := core.NewPooledBuffer()
	defer buf.Close()

	encodeEntity(buf, e)

	// bytes.Buffer writes never fail
	_, _ = c.crc.Write(buf.Bytes())
}

// encodeEntity writes the canonical binary form of an entity: a kind tag,
// the id, the common info fields, the tags in key order, and the kind
// specific payload.  The encoding only feeds the checksum; it is not a wire
// format.
func encodeEntity(buf *core.PooledBuffer, e model.Entity) {
	buf.WriteByte(kindTag(e.GetType()))
	writeInt64(buf, int64(e.GetID()))

	encodeInfo(buf, e.GetInfo())
	encodeTags(buf, e.GetTags())

	switch v := e.(type) {
	case model.Node:
		encodeLocation(buf, v)
	case model.Way:
		writeInt64(buf, int64(len(v.NodeIDs)))

		for _, id := range v.NodeIDs {
			writeInt64(buf, int64(id))
		}
	case model.Relation:
		writeInt64(buf, int64(len(v.Members)))

		for _, m := range v.Members {
			buf.WriteByte(kindTag(m.Type))
			writeInt64(buf, int64(m.ID))
			writeString(buf, m.Role)
		}
	}
}

func encodeInfo(buf *core.PooledBuffer, info *model.Info) {
	if info == nil {
		writeInt64(buf, 0)
		writeInt64(buf, 0)
		writeInt64(buf, 0)

		return
	}

	writeInt64(buf, int64(info.Version))

	if info.Timestamp.IsZero() {
		writeInt64(buf, 0)
	} else {
		writeInt64(buf, info.Timestamp.Unix())
	}

	writeInt64(buf, info.Changeset)
}

func encodeTags(buf *core.PooledBuffer, tags map[string]string) {
	writeInt64(buf, int64(len(tags)))

	// key order keeps the digest independent of map iteration
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		writeString(buf, k)
		writeString(buf, tags[k])
	}
}

func encodeLocation(buf *core.PooledBuffer, n model.Node) {
	if !n.HasLocation() {
		buf.WriteByte(0)

		return
	}

	buf.WriteByte(1)
	writeInt32(buf, n.Lon.E7())
	writeInt32(buf, n.Lat.E7())
}

func kindTag(t model.EntityType) byte {
	switch t {
	case model.NODE:
		return 'n'
	case model.WAY:
		return 'w'
	case model.RELATION:
		return 'r'
	case model.CHANGESET:
		return 'c'
	default:
		return '?'
	}
}

func writeInt64(buf *core.PooledBuffer, v int64) {
	var b [8]byte

	binary.BigEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
}

func writeInt32(buf *core.PooledBuffer, v int32) {
	var b [4]byte

	binary.BigEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func writeString(buf *core.PooledBuffer, s string) {
	var b [4]byte

	binary.BigEndian.PutUint32(b[:], uint32(len(s)))
	buf.Write(b[:])
	buf.WriteString(s)
}
