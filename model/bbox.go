package model

import (
	"fmt"
	"strings"
)

const (
	MaxLat Degrees = 90.0
	MaxLon Degrees = 180.0
	MinLat Degrees = -90.0
	MinLon Degrees = -180.0
)

// BoundingBox is simply a bounding box.
type BoundingBox struct {
	Top    Degrees
	Left   Degrees
	Bottom Degrees
	Right  Degrees
}

// InitialBoundingBox creates a BoundingBox that is meant to be extended.
func InitialBoundingBox() *BoundingBox {
	return &BoundingBox{
		Top:    MinLat,
		Left:   MaxLon,
		Bottom: MaxLat,
		Right:  MinLon,
	}
}

// Defined reports whether the box has been extended with at least one point.
// An initial box has its edges crossed and is not defined.
func (b *BoundingBox) Defined() bool {
	return b.Left <= b.Right && b.Bottom <= b.Top
}

// EqualWithin checks if two bounding boxes are within a specific epsilon.
func (b *BoundingBox) EqualWithin(o *BoundingBox, eps Epsilon) bool {
	return b.Left.EqualWithin(o.Left, eps) &&
		b.Right.EqualWithin(o.Right, eps) &&
		b.Top.EqualWithin(o.Top, eps) &&
		b.Bottom.EqualWithin(o.Bottom, eps)
}

// Contains checks if the bounding box contains the lat lng point.
func (b *BoundingBox) Contains(lat Degrees, lng Degrees) bool {
	return b.Left <= lng && lng <= b.Right && b.Bottom <= lat && lat <= b.Top
}

// ExtendWithLonLat grows the box so that it contains the point.  Undefined
// coordinates leave the box untouched.
func (b *BoundingBox) ExtendWithLonLat(lon, lat Degrees) {
	if !lon.Defined() || !lat.Defined() {
		return
	}

	if b.Top < lat {
		b.Top = lat
	}

	if b.Bottom > lat {
		b.Bottom = lat
	}

	if b.Left > lon {
		b.Left = lon
	}

	if b.Right < lon {
		b.Right = lon
	}
}

// ExtendWithBoundingBox grows the box so that it contains the other box.
func (b *BoundingBox) ExtendWithBoundingBox(bbox *BoundingBox) {
	if b.Top < bbox.Top {
		b.Top = bbox.Top
	}

	if b.Bottom > bbox.Bottom {
		b.Bottom = bbox.Bottom
	}

	if b.Left > bbox.Left {
		b.Left = bbox.Left
	}

	if b.Right < bbox.Right {
		b.Right = bbox.Right
	}
}

// MarshalJSON renders the box as the four ordered numbers
// [min-lon, min-lat, max-lon, max-lat], or an empty array when undefined.
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	if !b.Defined() {
		return []byte("[]"), nil
	}

	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(ftoa(float64(b.Left)))
	sb.WriteByte(',')
	sb.WriteString(ftoa(float64(b.Bottom)))
	sb.WriteByte(',')
	sb.WriteString(ftoa(float64(b.Right)))
	sb.WriteByte(',')
	sb.WriteString(ftoa(float64(b.Top)))
	sb.WriteByte(']')

	return []byte(sb.String()), nil
}

func (b *BoundingBox) String() string {
	if !b.Defined() {
		return "(undefined)"
	}

	return fmt.Sprintf("[%s, %s, %s, %s]",
		ftoa(float64(b.Left)), ftoa(float64(b.Bottom)),
		ftoa(float64(b.Right)), ftoa(float64(b.Top)))
}
