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

package osminfo_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osminfo"
	"m4o.io/osminfo/model"
)

func node(id model.ID, lon, lat model.Degrees, ts time.Time) model.Node {
	return model.Node{
		ID:   id,
		Info: &model.Info{Version: 1, Timestamp: ts, Visible: true},
		Lon:  lon,
		Lat:  lat,
	}
}

func bareNode(id model.ID) model.Node {
	return model.Node{ID: id, Lon: model.UndefinedDegrees(), Lat: model.UndefinedDegrees()}
}

func fold(entities ...model.Entity) *osminfo.Accumulator {
	info := osminfo.NewAccumulator()
	for _, e := range entities {
		info.Apply(e)
	}

	return info
}

func TestAccumulator_Empty(t *testing.T) {
	info := osminfo.NewAccumulator()

	assert.Equal(t, uint64(0), info.Changesets())
	assert.Equal(t, uint64(0), info.Nodes())
	assert.Equal(t, uint64(0), info.Ways())
	assert.Equal(t, uint64(0), info.Relations())
	assert.Equal(t, model.ID(0), info.LargestNodeID())
	assert.False(t, info.Bounds().Defined())
	assert.True(t, info.Ordered())
	assert.False(t, info.MultipleVersions())

	_, ok := info.FirstTimestamp()
	assert.False(t, ok)
	_, ok = info.LastTimestamp()
	assert.False(t, ok)
}

func TestAccumulator_Counts(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	info := fold(
		model.Changeset{ID: 42},
		node(1, 13.4, 52.5, ts),
		node(2, 13.5, 52.6, ts),
		model.Way{ID: 3, Info: &model.Info{Version: 1, Timestamp: ts}, NodeIDs: []model.ID{1, 2}},
		model.Relation{ID: 4, Info: &model.Info{Version: 1, Timestamp: ts}},
	)

	assert.Equal(t, uint64(1), info.Changesets())
	assert.Equal(t, uint64(2), info.Nodes())
	assert.Equal(t, uint64(1), info.Ways())
	assert.Equal(t, uint64(1), info.Relations())
	assert.Equal(t, model.ID(42), info.LargestChangesetID())
	assert.Equal(t, model.ID(2), info.LargestNodeID())
	assert.Equal(t, model.ID(3), info.LargestWayID())
	assert.Equal(t, model.ID(4), info.LargestRelationID())
}

func TestAccumulator_Bounds(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	info := fold(
		node(1, -0.511482, 51.28554, ts),
		node(2, 0.335437, 51.69344, ts),
		bareNode(3),
	)

	bounds := info.Bounds()
	require.True(t, bounds.Defined())
	assert.InDelta(t, -0.511482, float64(bounds.Left), float64(model.E7))
	assert.InDelta(t, 51.28554, float64(bounds.Bottom), float64(model.E7))
	assert.InDelta(t, 0.335437, float64(bounds.Right), float64(model.E7))
	assert.InDelta(t, 51.69344, float64(bounds.Top), float64(model.E7))
}

func TestAccumulator_BoundsIgnoresMissingLocations(t *testing.T) {
	info := fold(bareNode(1), bareNode(2))

	assert.Equal(t, uint64(2), info.Nodes())
	assert.False(t, info.Bounds().Defined())
}

func TestAccumulator_Timestamps(t *testing.T) {
	first := time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)
	last := time.Date(2021, 3, 15, 8, 30, 0, 0, time.UTC)
	mid := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	info := fold(node(1, 1, 1, mid), node(2, 1, 1, first), node(3, 1, 1, last))

	got, ok := info.FirstTimestamp()
	require.True(t, ok)
	assert.Equal(t, first, got)

	got, ok = info.LastTimestamp()
	require.True(t, ok)
	assert.Equal(t, last, got)
}

func TestAccumulator_PreEpochTimestamps(t *testing.T) {
	first := time.Date(1965, 6, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(1968, 2, 1, 0, 0, 0, 0, time.UTC)

	info := fold(node(1, 1, 1, last), node(2, 1, 1, first))

	got, ok := info.FirstTimestamp()
	require.True(t, ok)
	assert.Equal(t, first, got)

	got, ok = info.LastTimestamp()
	require.True(t, ok)
	assert.Equal(t, last, got)
	assert.False(t, got.Before(first))
}

func TestAccumulator_OrderedByTypeAndID(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	test_cases := []struct {
		name     string
		entities []model.Entity
		ordered  bool
	}{
		{
			"ascending ids",
			[]model.Entity{node(1, 1, 1, ts), node(2, 1, 1, ts), node(5, 1, 1, ts)},
			true,
		},
		{
			"descending ids",
			[]model.Entity{node(5, 1, 1, ts), node(1, 1, 1, ts)},
			false,
		},
		{
			"type progression",
			[]model.Entity{
				node(1, 1, 1, ts),
				model.Way{ID: 1, NodeIDs: []model.ID{1}},
				model.Relation{ID: 1},
			},
			true,
		},
		{
			"type regression",
			[]model.Entity{
				node(1, 1, 1, ts),
				model.Way{ID: 1, NodeIDs: []model.ID{1}},
				node(2, 1, 1, ts),
			},
			false,
		},
		{
			"negative ids after positive",
			[]model.Entity{node(7, 1, 1, ts), node(-1, 1, 1, ts), node(-3, 1, 1, ts)},
			true,
		},
		{
			"negative id before positive",
			[]model.Entity{node(-1, 1, 1, ts), node(7, 1, 1, ts)},
			false,
		},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			info := fold(tc.entities...)
			assert.Equal(t, tc.ordered, info.Ordered())
		})
	}
}

func TestAccumulator_MultipleVersions(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	info := fold(node(3, 1, 1, ts), node(3, 1, 1, ts.Add(time.Hour)), node(4, 1, 1, ts))

	assert.True(t, info.Ordered())
	assert.True(t, info.MultipleVersions())
}

func TestAccumulator_ChangesetOrdering(t *testing.T) {
	test_cases := []struct {
		name    string
		ids     []model.ID
		ordered bool
	}{
		{"ascending with duplicate", []model.ID{1, 2, 2, 5}, true},
		{"descending", []model.ID{1, 5, 3}, false},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			info := osminfo.NewAccumulator()
			for _, id := range tc.ids {
				info.Apply(model.Changeset{ID: id})
			}

			assert.Equal(t, tc.ordered, info.Ordered())
			assert.Equal(t, uint64(len(tc.ids)), info.Changesets())
		})
	}
}

func TestAccumulator_ChangesetsDoNotBreakObjectOrdering(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	info := fold(
		model.Changeset{ID: 9},
		node(1, 1, 1, ts),
		node(2, 1, 1, ts),
	)

	assert.True(t, info.Ordered())
}

func TestAccumulator_NegativeIDsOnlyMaxID(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	info := fold(node(-1, 1, 1, ts), node(-3, 1, 1, ts))

	assert.Equal(t, model.ID(0), info.LargestNodeID())
}

func TestAccumulator_Deterministic(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	entities := []model.Entity{
		model.Changeset{ID: 1, Tags: map[string]string{"created_by": "JOSM"}},
		node(1, 13.4, 52.5, ts),
		model.Way{ID: 2, Info: &model.Info{Version: 3, Timestamp: ts, Changeset: 1}, NodeIDs: []model.ID{1}},
		model.Relation{ID: 3, Members: []model.Member{{ID: 2, Type: model.WAY, Role: "outer"}}},
	}

	a := fold(entities...)
	b := fold(entities...)

	assert.Equal(t, a.CRC32(), b.CRC32())
	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Ordered(), b.Ordered())
}

func TestAccumulator_ChecksumIsOrderSensitive(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	n1 := node(1, 13.4, 52.5, ts)
	n2 := node(2, 13.5, 52.6, ts)

	a := fold(n1, n2)
	b := fold(n2, n1)

	assert.NotEqual(t, a.CRC32(), b.CRC32())
}

func TestAccumulator_ChecksumIgnoresTagOrder(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	n := node(1, 13.4, 52.5, ts)
	n.Tags = map[string]string{"highway": "primary", "name": "Unter den Linden", "oneway": "yes"}

	a := fold(n)
	b := fold(n)

	assert.Equal(t, a.CRC32(), b.CRC32())
}

func TestAccumulator_ChecksumSeesWholeStrings(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	long := strings.Repeat("x", 70_000)

	a := fold(model.Node{ID: 1, Tags: map[string]string{"note": long + "a"},
		Info: &model.Info{Version: 1, Timestamp: ts}, Lon: 1, Lat: 1})
	b := fold(model.Node{ID: 1, Tags: map[string]string{"note": long + "b"},
		Info: &model.Info{Version: 1, Timestamp: ts}, Lon: 1, Lat: 1})

	assert.NotEqual(t, a.CRC32(), b.CRC32())
}

func TestAccumulator_WithIDOrder(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	// plain signed comparison treats -1 before 7 as in order
	info := osminfo.NewAccumulator(osminfo.WithIDOrder(func(a, b model.ID) bool {
		return a < b
	}))
	info.Apply(node(-1, 1, 1, ts))
	info.Apply(node(7, 1, 1, ts))

	assert.True(t, info.Ordered())
}
