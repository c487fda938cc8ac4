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

import "seehuhn.de/go/geom/vec"

// Limits for the settings values.  Values outside these ranges are
// clamped, never rejected.
const (
	MaxOutlineWidth = 200
	MaxSizeOffset   = 200
	MaxDetailLevel  = 10
)

// VisualSettings control how the base geometry of a shape is turned into
// visible geometry.
//
// Outline and Glow are alternative modes.  If both are set, neither is
// applied and the shape is drawn as a plain fill.
type VisualSettings struct {
	Color Color `yaml:"color" json:"color"`

	Outline bool `yaml:"outline,omitempty" json:"outline,omitempty"`
	Glow    bool `yaml:"glow,omitempty" json:"glow,omitempty"`

	// OutlineWidth is the width of the outline band, or the extent of
	// the glow halo.  The value is in [-MaxOutlineWidth, MaxOutlineWidth].
	OutlineWidth float64 `yaml:"outlineWidth,omitempty" json:"outlineWidth,omitempty"`

	// DetailLevel is the number of extra samples per half-corner of a
	// rounded glow join.  The value is in [0, MaxDetailLevel].
	DetailLevel int `yaml:"detailLevel,omitempty" json:"detailLevel,omitempty"`

	Antialiasing bool `yaml:"antialiasing,omitempty" json:"antialiasing,omitempty"`

	// InnerShadow disables the position offset of the transform
	// settings; the shadow band builder applies the offset instead.
	InnerShadow bool `yaml:"innerShadow,omitempty" json:"innerShadow,omitempty"`
}

// TransformSettings move and resize the geometry of a shape.
type TransformSettings struct {
	// SizeOffset grows the boundary ring outward (positive) or shrinks it
	// (negative).  The value is in [-MaxSizeOffset, MaxSizeOffset].
	SizeOffset float64 `yaml:"sizeOffset,omitempty" json:"sizeOffset,omitempty"`

	PositionOffset vec.Vec2 `yaml:"positionOffset,omitempty" json:"positionOffset,omitempty"`
}

// DefaultVisualSettings are used when no visual settings are given:
// an opaque white plain fill.
var DefaultVisualSettings = VisualSettings{Color: White}

// DefaultTransformSettings are used when no transform settings are given.
var DefaultTransformSettings = TransformSettings{}

// Effective returns the settings to use for a refresh.  For a nil
// receiver this is DefaultVisualSettings; otherwise it is a copy of vs
// with all values clamped to their valid ranges.
func (vs *VisualSettings) Effective() VisualSettings {
	if vs == nil {
		return DefaultVisualSettings
	}
	res := *vs
	res.OutlineWidth = clamp(res.OutlineWidth, -MaxOutlineWidth, MaxOutlineWidth)
	res.DetailLevel = min(max(res.DetailLevel, 0), MaxDetailLevel)
	return res
}

// Effective returns the settings to use for a refresh.  For a nil
// receiver this is DefaultTransformSettings; otherwise it is a copy of
// ts with all values clamped to their valid ranges.
func (ts *TransformSettings) Effective() TransformSettings {
	if ts == nil {
		return DefaultTransformSettings
	}
	res := *ts
	res.SizeOffset = clamp(res.SizeOffset, -MaxSizeOffset, MaxSizeOffset)
	return res
}

// mode returns the visual processing which applies to vs.
func (vs VisualSettings) mode() visualMode {
	switch {
	case vs.Outline && !vs.Glow:
		return modeOutline
	case vs.Glow && !vs.Outline:
		return modeGlow
	default:
		return modeFill
	}
}

type visualMode int

const (
	modeFill visualMode = iota
	modeOutline
	modeGlow
)

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}
