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

// Package opl reads entities from the line oriented OPL format.  One line
// holds one entity; fields are space separated and tagged by their first
// character, with problematic characters written as %hex% escapes.
package opl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"m4o.io/osminfo/model"
)

// ParseLine parses a single OPL line into an entity.  Blank lines and
// comments yield a nil entity.  Malformed optional fields (timestamps,
// coordinates) are treated as absent; a malformed id or type is an error.
func ParseLine(line string) (model.Entity, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	head, rest, _ := strings.Cut(line, " ")

	id, err := strconv.ParseInt(head[1:], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OPL id %q: %w", head, err)
	}

	p := parser{id: model.ID(id), lon: model.UndefinedDegrees(), lat: model.UndefinedDegrees()}

	for _, field := range strings.Fields(rest) {
		p.field(field)
	}

	switch head[0] {
	case 'n':
		return model.Node{ID: p.id, Tags: p.tags, Info: p.info, Lon: p.lon, Lat: p.lat}, nil
	case 'w':
		return model.Way{ID: p.id, Tags: p.tags, Info: p.info, NodeIDs: p.refs}, nil
	case 'r':
		return model.Relation{ID: p.id, Tags: p.tags, Info: p.info, Members: p.members}, nil
	case 'c':
		return model.Changeset{ID: p.id, Tags: p.tags}, nil
	default:
		return nil, fmt.Errorf("unknown OPL entity type %q", head[0])
	}
}

type parser struct {
	id      model.ID
	info    *model.Info
	tags    map[string]string
	lon     model.Degrees
	lat     model.Degrees
	refs    []model.ID
	members []model.Member
}

// field dispatches one tagged field.  Unknown field letters are skipped so
// that richer OPL variants (changeset extents, comment counts) still parse.
func (p *parser) field(f string) {
	if f == "" {
		return
	}

	value := f[1:]

	switch f[0] {
	case 'v':
		if v, err := strconv.ParseInt(value, 10, 32); err == nil {
			p.ensureInfo().Version = int32(v)
		}
	case 'd':
		p.ensureInfo().Visible = value != "D"
	case 'c':
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			p.ensureInfo().Changeset = v
		}
	case 't':
		if ts, err := time.Parse(time.RFC3339, value); err == nil {
			p.ensureInfo().Timestamp = ts
		}
	case 'i':
		if v, err := strconv.ParseInt(value, 10, 32); err == nil {
			p.ensureInfo().UID = model.UID(v)
		}
	case 'u':
		p.ensureInfo().User = unescape(value)
	case 'T':
		p.parseTags(value)
	case 'x':
		if d, err := model.ParseDegrees(value); err == nil {
			p.lon = d
		}
	case 'y':
		if d, err := model.ParseDegrees(value); err == nil {
			p.lat = d
		}
	case 'N':
		p.parseRefs(value)
	case 'M':
		p.parseMembers(value)
	}
}

func (p *parser) ensureInfo() *model.Info {
	if p.info == nil {
		p.info = &model.Info{Visible: true}
	}

	return p.info
}

func (p *parser) parseTags(value string) {
	if value == "" {
		return
	}

	p.tags = make(map[string]string)

	for _, kv := range strings.Split(value, ",") {
		k, v, _ := strings.Cut(kv, "=")
		p.tags[unescape(k)] = unescape(v)
	}
}

func (p *parser) parseRefs(value string) {
	if value == "" {
		return
	}

	for _, ref := range strings.Split(value, ",") {
		ref = strings.TrimPrefix(ref, "n")

		if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
			p.refs = append(p.refs, model.ID(id))
		}
	}
}

func (p *parser) parseMembers(value string) {
	if value == "" {
		return
	}

	for _, m := range strings.Split(value, ",") {
		if len(m) < 2 {
			continue
		}

		var mt model.EntityType

		switch m[0] {
		case 'n':
			mt = model.NODE
		case 'w':
			mt = model.WAY
		case 'r':
			mt = model.RELATION
		default:
			continue
		}

		ref, role, _ := strings.Cut(m[1:], "@")

		id, err := strconv.ParseInt(ref, 10, 64)
		if err != nil {
			continue
		}

		p.members = append(p.members, model.Member{
			ID:   model.ID(id),
			Type: mt,
			Role: unescape(role),
		})
	}
}

// unescape decodes OPL %hex% escapes into their code points.
func unescape(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}

	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			sb.WriteByte(s[i])

			continue
		}

		end := strings.IndexByte(s[i+1:], '%')
		if end < 0 {
			sb.WriteByte(s[i])

			continue
		}

		code, err := strconv.ParseUint(s[i+1:i+1+end], 16, 32)
		if err != nil {
			sb.WriteByte(s[i])

			continue
		}

		sb.WriteRune(rune(code))
		i += end + 1
	}

	return sb.String()
}
