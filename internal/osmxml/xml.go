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

// Package osmxml reads entities from the OSM XML format, including the
// .osc change rendition whose create/modify/delete wrappers are treated as
// transparent containers.
package osmxml

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"m4o.io/osminfo/model"
)

// Source is a pull-based entity stream over OSM XML input.  The prologue
// (the osm element attributes and any bounds declarations) is consumed at
// construction time; entities are decoded lazily, one Decode call at a time.
type Source struct {
	ctx     context.Context
	dec     *xml.Decoder
	header  model.Header
	pending *xml.StartElement
}

// NewSource reads the XML prologue from r and positions the source at the
// first entity.  The caller supplies the declarations derived from the file
// name; declarations found in the prologue are merged in.
func NewSource(ctx context.Context, r io.Reader, header model.Header) (*Source, error) {
	s := &Source{ctx: ctx, dec: xml.NewDecoder(r), header: header}

	if err := s.prologue(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Source) prologue() error {
	for {
		tok, err := s.dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("unable to read XML prologue: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "osm", "osmChange":
			for _, attr := range se.Attr {
				if attr.Name.Space != "" {
					continue
				}

				s.header.Options = append(s.header.Options,
					model.Option{Key: attr.Name.Local, Value: attr.Value})
			}
		case "bounds":
			s.header.Boxes = append(s.header.Boxes, parseBounds(se))

			if err := s.dec.Skip(); err != nil {
				return fmt.Errorf("unable to skip bounds: %w", err)
			}
		default:
			// first entity (or change wrapper); hand it to Decode
			s.pending = &se

			return nil
		}
	}
}

// Header returns the declared header metadata.
func (s *Source) Header() model.Header {
	return s.header
}

// Decode returns the next entity in file order, or io.EOF when the stream
// is exhausted.
func (s *Source) Decode() (model.Entity, error) {
	for {
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		default:
		}

		se, err := s.next()
		if err != nil {
			return nil, err
		}

		switch se.Name.Local {
		case "create", "modify", "delete":
			// transparent change containers
			continue
		case "node":
			return s.node(se)
		case "way":
			return s.way(se)
		case "relation":
			return s.relation(se)
		case "changeset":
			return s.changeset(se)
		default:
			if err := s.dec.Skip(); err != nil {
				return nil, fmt.Errorf("unable to skip element: %w", err)
			}
		}
	}
}

// Close releases the source.  The underlying reader belongs to the caller.
func (s *Source) Close() error {
	return nil
}

func (s *Source) next() (xml.StartElement, error) {
	if s.pending != nil {
		se := *s.pending
		s.pending = nil

		return se, nil
	}

	for {
		tok, err := s.dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, io.EOF
		} else if err != nil {
			slog.Error("unable to read XML token", "error", err)

			return xml.StartElement{}, fmt.Errorf("unable to read XML: %w", err)
		}

		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func (s *Source) node(se xml.StartElement) (model.Entity, error) {
	n := model.Node{Lon: model.UndefinedDegrees(), Lat: model.UndefinedDegrees()}

	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "id":
			id, err := strconv.ParseInt(attr.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid node id %q: %w", attr.Value, err)
			}

			n.ID = model.ID(id)
		case "lon":
			if d, err := model.ParseDegrees(attr.Value); err == nil {
				n.Lon = d
			}
		case "lat":
			if d, err := model.ParseDegrees(attr.Value); err == nil {
				n.Lat = d
			}
		default:
			parseInfoAttr(&n.Info, attr)
		}
	}

	tags, _, _, err := s.children(se.Name)
	if err != nil {
		return nil, err
	}

	n.Tags = tags

	return n, nil
}

func (s *Source) way(se xml.StartElement) (model.Entity, error) {
	w := model.Way{}

	for _, attr := range se.Attr {
		if attr.Name.Local == "id" {
			id, err := strconv.ParseInt(attr.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid way id %q: %w", attr.Value, err)
			}

			w.ID = model.ID(id)
		} else {
			parseInfoAttr(&w.Info, attr)
		}
	}

	tags, refs, _, err := s.children(se.Name)
	if err != nil {
		return nil, err
	}

	w.Tags = tags
	w.NodeIDs = refs

	return w, nil
}

func (s *Source) relation(se xml.StartElement) (model.Entity, error) {
	r := model.Relation{}

	for _, attr := range se.Attr {
		if attr.Name.Local == "id" {
			id, err := strconv.ParseInt(attr.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid relation id %q: %w", attr.Value, err)
			}

			r.ID = model.ID(id)
		} else {
			parseInfoAttr(&r.Info, attr)
		}
	}

	tags, _, members, err := s.children(se.Name)
	if err != nil {
		return nil, err
	}

	r.Tags = tags
	r.Members = members

	return r, nil
}

func (s *Source) changeset(se xml.StartElement) (model.Entity, error) {
	c := model.Changeset{}

	for _, attr := range se.Attr {
		if attr.Name.Local == "id" {
			id, err := strconv.ParseInt(attr.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid changeset id %q: %w", attr.Value, err)
			}

			c.ID = model.ID(id)
		}
	}

	tags, _, _, err := s.children(se.Name)
	if err != nil {
		return nil, err
	}

	c.Tags = tags

	return c, nil
}

// children consumes the element body, collecting tag, nd and member
// children until the matching end element.
func (s *Source) children(name xml.Name) (map[string]string, []model.ID, []model.Member, error) {
	var (
		tags    map[string]string
		refs    []model.ID
		members []model.Member
	)

	for {
		tok, err := s.dec.Token()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("unable to read %s body: %w", name.Local, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tag":
				var k, v string

				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "k":
						k = attr.Value
					case "v":
						v = attr.Value
					}
				}

				if tags == nil {
					tags = make(map[string]string)
				}

				tags[k] = v
			case "nd":
				for _, attr := range t.Attr {
					if attr.Name.Local == "ref" {
						if id, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
							refs = append(refs, model.ID(id))
						}
					}
				}
			case "member":
				if m, ok := parseMember(t); ok {
					members = append(members, m)
				}
			}

			if err := s.dec.Skip(); err != nil {
				return nil, nil, nil, fmt.Errorf("unable to skip %s child: %w", name.Local, err)
			}
		case xml.EndElement:
			if t.Name.Local == name.Local {
				return tags, refs, members, nil
			}
		}
	}
}

func parseMember(se xml.StartElement) (model.Member, bool) {
	m := model.Member{}

	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "type":
			switch attr.Value {
			case "node":
				m.Type = model.NODE
			case "way":
				m.Type = model.WAY
			case "relation":
				m.Type = model.RELATION
			default:
				return m, false
			}
		case "ref":
			id, err := strconv.ParseInt(attr.Value, 10, 64)
			if err != nil {
				return m, false
			}

			m.ID = model.ID(id)
		case "role":
			m.Role = attr.Value
		}
	}

	return m, true
}

// parseInfoAttr folds one optional metadata attribute into the info block,
// creating it on first use.  Malformed values are treated as absent.
func parseInfoAttr(info **model.Info, attr xml.Attr) {
	ensure := func() *model.Info {
		if *info == nil {
			*info = &model.Info{Visible: true}
		}

		return *info
	}

	switch attr.Name.Local {
	case "version":
		if v, err := strconv.ParseInt(attr.Value, 10, 32); err == nil {
			ensure().Version = int32(v)
		}
	case "timestamp":
		if ts, err := time.Parse(time.RFC3339, attr.Value); err == nil {
			ensure().Timestamp = ts
		}
	case "changeset":
		if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
			ensure().Changeset = v
		}
	case "uid":
		if v, err := strconv.ParseInt(attr.Value, 10, 32); err == nil {
			ensure().UID = model.UID(v)
		}
	case "user":
		ensure().User = attr.Value
	case "visible":
		ensure().Visible = attr.Value != "false"
	}
}

func parseBounds(se xml.StartElement) model.BoundingBox {
	box := model.BoundingBox{}

	for _, attr := range se.Attr {
		d, err := model.ParseDegrees(attr.Value)
		if err != nil {
			continue
		}

		switch attr.Name.Local {
		case "minlon":
			box.Left = d
		case "minlat":
			box.Bottom = d
		case "maxlon":
			box.Right = d
		case "maxlat":
			box.Top = d
		}
	}

	return box
}
