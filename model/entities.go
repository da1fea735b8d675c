// Copyright 2017-25 the original author or authors.
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

// Package model contains the shared model for OpenStreetMap entity readers.
package model

import (
	"time"
)

// UID is the primary key for a user.
type UID int32

// ID is the primary key of an entity.  Negative ids are the convention for
// objects that have not been assigned a permanent identifier yet.
type ID int64

// Info represents information common to Node, Way, and Relation entities.
type Info struct {
	Version   int32
	UID       UID
	Timestamp time.Time
	Changeset int64
	User      string
	Visible   bool
}

// EntityType is an enumeration of entity types.
type EntityType int32

const (
	// NODE denotes that the entity is a node.
	NODE EntityType = iota

	// WAY denotes that the entity is a way.
	WAY

	// RELATION denotes that the entity is a relation.
	RELATION

	// CHANGESET denotes that the entity is a changeset.
	CHANGESET
)

func (t EntityType) String() string {
	switch t {
	case NODE:
		return "node"
	case WAY:
		return "way"
	case RELATION:
		return "relation"
	case CHANGESET:
		return "changeset"
	default:
		return "undefined"
	}
}

type Entity interface {
	isEntity() // prevents extensions

	GetID() ID

	GetType() EntityType

	GetTags() map[string]string

	GetInfo() *Info
}

// Node represents a specific point on the earth's surface defined by its
// latitude and longitude.  Deleted nodes may lack a location, in which case
// both coordinates are undefined.
type Node struct {
	ID   ID
	Tags map[string]string
	Info *Info
	Lat  Degrees
	Lon  Degrees
}

var _ Entity = Node{}

func (n Node) isEntity() {}

func (n Node) GetID() ID {
	return n.ID
}

func (n Node) GetType() EntityType {
	return NODE
}

func (n Node) GetTags() map[string]string {
	return n.Tags
}

func (n Node) GetInfo() *Info {
	return n.Info
}

// HasLocation reports whether the node carries a defined location.
func (n Node) HasLocation() bool {
	return n.Lon.Defined() && n.Lat.Defined()
}

// Way is an ordered list of between 2 and 2,000 nodes that define a polyline.
type Way struct {
	ID      ID
	Tags    map[string]string
	Info    *Info
	NodeIDs []ID
}

var _ Entity = Way{}

func (w Way) isEntity() {}

func (w Way) GetID() ID {
	return w.ID
}

func (w Way) GetType() EntityType {
	return WAY
}

func (w Way) GetTags() map[string]string {
	return w.Tags
}

func (w Way) GetInfo() *Info {
	return w.Info
}

// Member represents an entity referenced from a relation.
type Member struct {
	ID   ID
	Type EntityType
	Role string
}

// Relation is a multipurpose data structure that documents a relationship
// between two or more data entities (nodes, ways, and/or other relations).
type Relation struct {
	ID      ID
	Tags    map[string]string
	Info    *Info
	Members []Member
}

var _ Entity = Relation{}

func (r Relation) isEntity() {}

func (r Relation) GetID() ID {
	return r.ID
}

func (r Relation) GetType() EntityType {
	return RELATION
}

func (r Relation) GetTags() map[string]string {
	return r.Tags
}

func (r Relation) GetInfo() *Info {
	return r.Info
}

// Changeset is the record of one editing session.
type Changeset struct {
	ID   ID
	Tags map[string]string
}

var _ Entity = Changeset{}

func (c Changeset) isEntity() {}

func (c Changeset) GetID() ID {
	return c.ID
}

func (c Changeset) GetType() EntityType {
	return CHANGESET
}

func (c Changeset) GetTags() map[string]string {
	return c.Tags
}

func (c Changeset) GetInfo() *Info {
	return nil
}
