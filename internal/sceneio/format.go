// Package sceneio reads JSON scene descriptions and builds the immutable
// scene tree, lights, volumes and camera a render needs.
package sceneio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/rgb"
)

// File is the on-disk scene description.
type File struct {
	Materials map[string]MaterialCfg `json:"materials"`
	Root      NodeCfg                `json:"root"`
	Lights    []LightCfg             `json:"lights,omitempty"`
	Volumes   []VolumeCfg            `json:"volumes,omitempty"`
	Camera    CameraCfg              `json:"camera"`
	Ambient   Vec3                   `json:"ambient"`
	Renders   []RenderCfg            `json:"renders"`
}

// Vec3 is a JSON [x, y, z] triple.
type Vec3 [3]float64

func (v Vec3) vec() mgl64.Vec3 { return mgl64.Vec3(v) }

func (v Vec3) color() rgb.Color { return rgb.New(v[0], v[1], v[2]) }

// MaterialCfg is a Phong material. Setting Texture makes it textured and
// Kd is then ignored.
type MaterialCfg struct {
	Kd        Vec3    `json:"kd"`
	Ks        Vec3    `json:"ks"`
	Shininess float64 `json:"shininess"`

	Texture string  `json:"texture,omitempty"`
	UMax    float64 `json:"u_max,omitempty"` // defaults 1
	VMax    float64 `json:"v_max,omitempty"` // defaults 1
	Filter  string  `json:"filter,omitempty"`
}

// NodeCfg is one node of the tree. Type is one of node, sphere, cube,
// cylinder, cone or mesh; mesh nodes name their File.
type NodeCfg struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	File       string         `json:"file,omitempty"`
	Material   string         `json:"material,omitempty"`
	Transforms []TransformCfg `json:"transforms,omitempty"`
	Children   []NodeCfg      `json:"children,omitempty"`
}

// TransformCfg holds exactly one of its fields.
type TransformCfg struct {
	Scale     *Vec3      `json:"scale,omitempty"`
	Rotate    *RotateCfg `json:"rotate,omitempty"`
	Translate *Vec3      `json:"translate,omitempty"`
}

// RotateCfg rotates Angle degrees about axis x, y or z.
type RotateCfg struct {
	Axis  string  `json:"axis"`
	Angle float64 `json:"angle"`
}

type LightCfg struct {
	Position Vec3     `json:"position"`
	Color    Vec3     `json:"color"`
	Falloff  *Vec3    `json:"falloff,omitempty"` // defaults [1, 0, 0]
	Soft     *SoftCfg `json:"soft,omitempty"`
}

// SoftCfg spreads a light over a Samples×Samples grid of half-width Radius.
type SoftCfg struct {
	Radius  float64 `json:"radius"`
	Samples int     `json:"samples"`
}

// VolumeCfg holds one shape and an optional effect.
type VolumeCfg struct {
	Box    *BoxCfg   `json:"box,omitempty"`
	Cone   *ConeCfg  `json:"cone,omitempty"`
	Effect EffectCfg `json:"effect"`
}

type BoxCfg struct {
	Position Vec3 `json:"position"`
	Size     Vec3 `json:"size"`
}

type ConeCfg struct {
	Position Vec3    `json:"position"`
	ScaleY   float64 `json:"scale_y,omitempty"` // defaults 1
	Rotate   Vec3    `json:"rotate"`
	Height   float64 `json:"height,omitempty"`
}

// EffectCfg holds at most one color. None set means pass-through.
type EffectCfg struct {
	Fog   *Vec3 `json:"fog,omitempty"`
	Light *Vec3 `json:"light,omitempty"`
	Solid *Vec3 `json:"solid,omitempty"`
}

type CameraCfg struct {
	Eye  Vec3    `json:"eye"`
	View *Vec3   `json:"view,omitempty"` // defaults (0, 0, -1)
	Up   *Vec3   `json:"up,omitempty"`   // defaults (0, 1, 0)
	Fov  float64 `json:"fov,omitempty"`  // degrees, defaults 30
}

// RenderCfg requests one output image.
type RenderCfg struct {
	Output string `json:"output"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Decode parses a scene description. Unknown fields are rejected so typos
// surface before rendering.
func Decode(r io.Reader) (*File, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("sceneio: decode: %w", err)
	}
	return &f, nil
}
