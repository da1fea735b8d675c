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

// Package osminfo folds a stream of OpenStreetMap entities into summary
// statistics and integrity findings in a single forward pass.
package osminfo

import (
	"time"

	"m4o.io/osminfo/model"
)

// kindUndefined marks that no entity has been seen yet.
const kindUndefined model.EntityType = -1

// Accumulator consumes an entity stream exactly once, left to right, and
// maintains counts, largest ids, the data bounding box, the timestamp range,
// a content checksum, and the ordered/multiple-versions findings.  Only the
// immediately preceding entity is remembered, so memory use is constant
// regardless of dataset size.
//
// An Accumulator is not safe for concurrent mutation; once the stream is
// exhausted it is a frozen snapshot that any number of readers may share.
type Accumulator struct {
	idOrder IDOrder

	bounds *model.BoundingBox

	changesets uint64
	nodes      uint64
	ways       uint64
	relations  uint64

	largestChangesetID MaxOp[model.ID]
	largestNodeID      MaxOp[model.ID]
	largestWayID       MaxOp[model.ID]
	largestRelationID  MaxOp[model.ID]

	firstTimestamp MinOp[int64]
	lastTimestamp  MaxOp[int64]

	crc checksum

	unordered        Latch
	multipleVersions Latch

	lastType model.EntityType
	lastID   model.ID
}

// AccumulatorOption configures how we set up the accumulator.
type AccumulatorOption func(*Accumulator)

// WithIDOrder lets you replace the id ordering convention used for the
// ordered finding.
func WithIDOrder(order IDOrder) AccumulatorOption {
	return func(a *Accumulator) {
		a.idOrder = order
	}
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator(opts ...AccumulatorOption) *Accumulator {
	a := &Accumulator{
		idOrder:  DefaultIDOrder,
		bounds:   model.InitialBoundingBox(),
		crc:      newChecksum(),
		lastType: kindUndefined,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Apply folds one entity into the accumulator.
func (a *Accumulator) Apply(e model.Entity) {
	switch v := e.(type) {
	case model.Changeset:
		a.Changeset(v)
	case model.Node:
		a.Node(v)
	case model.Way:
		a.Way(v)
	case model.Relation:
		a.Relation(v)
	}
}

// Changeset folds one changeset into the accumulator.  A changeset id that
// decreases relative to an immediately preceding changeset trips the
// unordered latch; equal or increasing ids are accepted.
func (a *Accumulator) Changeset(c model.Changeset) {
	if a.lastType == model.CHANGESET && a.lastID > c.ID {
		a.unordered.Trip()
	}

	a.lastType = model.CHANGESET
	a.lastID = c.ID

	a.crc.update(c)
	a.changesets++

	a.largestChangesetID.Update(c.ID)
}

// object applies the transition rules shared by nodes, ways and relations.
// The order check and the duplicate check both need only the immediately
// preceding entity.
func (a *Accumulator) object(kind model.EntityType, id model.ID, info *model.Info) {
	if info != nil && !info.Timestamp.IsZero() {
		ts := info.Timestamp.Unix()
		a.firstTimestamp.Update(ts)
		a.lastTimestamp.Update(ts)
	}

	if a.lastType == kind {
		if a.lastID == id {
			a.multipleVersions.Trip()
		}

		if a.idOrder(id, a.lastID) {
			a.unordered.Trip()
		}
	} else if a.lastType != kindUndefined && a.lastType != model.CHANGESET && a.lastType > kind {
		// the stream regressed to an earlier kind after advancing past it
		a.unordered.Trip()
	}

	a.lastType = kind
	a.lastID = id
}

// Node folds one node into the accumulator.  Nodes without a location do not
// affect the bounding box.
func (a *Accumulator) Node(n model.Node) {
	a.object(model.NODE, n.ID, n.Info)

	a.crc.update(n)
	a.bounds.ExtendWithLonLat(n.Lon, n.Lat)
	a.nodes++

	a.largestNodeID.Update(n.ID)
}

// Way folds one way into the accumulator.
func (a *Accumulator) Way(w model.Way) {
	a.object(model.WAY, w.ID, w.Info)

	a.crc.update(w)
	a.ways++

	a.largestWayID.Update(w.ID)
}

// Relation folds one relation into the accumulator.
func (a *Accumulator) Relation(r model.Relation) {
	a.object(model.RELATION, r.ID, r.Info)

	a.crc.update(r)
	a.relations++

	a.largestRelationID.Update(r.ID)
}

// Bounds returns the bounding box extended by every node location seen.
func (a *Accumulator) Bounds() *model.BoundingBox {
	bounds := *a.bounds

	return &bounds
}

// Changesets returns the number of changesets seen.
func (a *Accumulator) Changesets() uint64 { return a.changesets }

// Nodes returns the number of nodes seen.
func (a *Accumulator) Nodes() uint64 { return a.nodes }

// Ways returns the number of ways seen.
func (a *Accumulator) Ways() uint64 { return a.ways }

// Relations returns the number of relations seen.
func (a *Accumulator) Relations() uint64 { return a.relations }

// maxID reduces a largest-id tracker to the reported id.  Ids never exceeding
// zero report as zero, the reporting convention for datasets holding only
// negative (placeholder) ids.
func maxID(m MaxOp[model.ID]) model.ID {
	v, ok := m.Value()
	if !ok || v < 0 {
		return 0
	}

	return v
}

// LargestChangesetID returns the largest changeset id seen, or zero.
func (a *Accumulator) LargestChangesetID() model.ID { return maxID(a.largestChangesetID) }

// LargestNodeID returns the largest node id seen, or zero.
func (a *Accumulator) LargestNodeID() model.ID { return maxID(a.largestNodeID) }

// LargestWayID returns the largest way id seen, or zero.
func (a *Accumulator) LargestWayID() model.ID { return maxID(a.largestWayID) }

// LargestRelationID returns the largest relation id seen, or zero.
func (a *Accumulator) LargestRelationID() model.ID { return maxID(a.largestRelationID) }

// FirstTimestamp returns the earliest object timestamp seen.  The second
// return is false when no object carried a timestamp.
func (a *Accumulator) FirstTimestamp() (time.Time, bool) {
	v, ok := a.firstTimestamp.Value()
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(v, 0).UTC(), true
}

// LastTimestamp returns the latest object timestamp seen.  The second return
// is false when no object carried a timestamp.
func (a *Accumulator) LastTimestamp() (time.Time, bool) {
	v, ok := a.lastTimestamp.Value()
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(v, 0).UTC(), true
}

// CRC32 returns the running content checksum.
func (a *Accumulator) CRC32() uint32 {
	return a.crc.Sum32()
}

// Ordered reports whether the stream was ordered by type and id.
func (a *Accumulator) Ordered() bool {
	return !a.unordered.Tripped()
}

// MultipleVersions reports whether two consecutive same-kind entities shared
// an id.  The finding is only meaningful when Ordered is true; rendering the
// distinction is the caller's concern.
func (a *Accumulator) MultipleVersions() bool {
	return a.multipleVersions.Tripped()
}
