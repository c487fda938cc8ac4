// seehuhn.de/go/shapemesh - triangulated meshes for 2D vector shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shapemesh

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"
)

// Document is the serialized form of a shape with its settings.
//
// Exactly one of Polygon and RoundedRectangle must be set.
type Document struct {
	Bounds rect.Rect `yaml:"bounds"`

	Polygon          *Polygon          `yaml:"polygon,omitempty"`
	RoundedRectangle *RoundedRectangle `yaml:"roundedRectangle,omitempty"`

	Visual    *VisualSettings    `yaml:"visual,omitempty"`
	Transform *TransformSettings `yaml:"transform,omitempty"`

	// Copies are additional copies of the shape, for example drop
	// shadows, drawn with their own settings.
	Copies []CopySettings `yaml:"copies,omitempty"`
}

// CopySettings describe one additional copy of a shape.
type CopySettings struct {
	Visual    *VisualSettings    `yaml:"visual,omitempty"`
	Transform *TransformSettings `yaml:"transform,omitempty"`

	// Overlay copies are drawn on top of the shape.  Other copies are
	// drawn behind it.
	Overlay bool `yaml:"overlay,omitempty"`
}

var (
	errNoShape       = errors.New("document has no shape")
	errTooManyShapes = errors.New("document has both a polygon and a rounded rectangle")
)

// Shape returns the shape described by the document.
func (d *Document) Shape() (Shape, error) {
	switch {
	case d.Polygon != nil && d.RoundedRectangle != nil:
		return nil, errTooManyShapes
	case d.Polygon != nil:
		return d.Polygon, nil
	case d.RoundedRectangle != nil:
		return d.RoundedRectangle, nil
	default:
		return nil, errNoShape
	}
}

// Refresh computes the geometry of the shape described by the document.
func (d *Document) Refresh() (*Result, error) {
	shape, err := d.Shape()
	if err != nil {
		return nil, err
	}
	return Refresh(shape, d.Bounds, d.Visual, d.Transform), nil
}

// Build returns the combined geometry of the shape and all its copies,
// in drawing order.
func (d *Document) Build() (Mesh, error) {
	res, err := d.Refresh()
	if err != nil {
		return Mesh{}, err
	}

	var behind, above Mesh
	for _, c := range d.Copies {
		cp := Copy(res, c.Visual, c.Transform)
		if c.Overlay {
			above.Append(cp.Mesh)
		} else {
			behind.Append(cp.Mesh)
		}
	}

	m := behind
	m.Append(res.Mesh)
	m.Append(above)
	return m, nil
}

// ReadDocument decodes a YAML document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	d := &Document{}
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("decoding shape document: %w", err)
	}
	if _, err := d.Shape(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDocument reads a YAML document from a file.
func LoadDocument(fname string) (*Document, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	d, err := ReadDocument(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return d, nil
}

// WriteDocument encodes d as YAML.
func (d *Document) WriteDocument(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding shape document: %w", err)
	}
	return enc.Close()
}
