// Package grammar reads and writes terrain grammars as JSON documents so
// the command-line tools can work on grammars authored outside the
// built-in presets.
//
// Symbols are single characters. Grid rows (seed, replacements and 3×3
// neighbourhoods) are strings with one character per cell, '*' being the
// wildcard. Textures and meshes are referenced from patches by name.
package grammar

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is the serialized form of a grammar.
type Document struct {
	Name     string       `json:"name,omitempty"`
	Depth    int          `json:"depth"`
	Symbols  []SymbolDoc  `json:"symbols"`
	Textures []TextureDoc `json:"textures,omitempty"`
	Meshes   []MeshDoc    `json:"meshes,omitempty"`
	Rules    []RuleDoc    `json:"rules,omitempty"`
	Patches  []PatchDoc   `json:"patches,omitempty"`
	Seed     []string     `json:"seed"`
}

type SymbolDoc struct {
	Code    string `json:"code"`
	Name    string `json:"name,omitempty"`
	Texture string `json:"texture,omitempty"`
}

type TextureDoc struct {
	Name      string `json:"name"`
	LayerInfo string `json:"layer_info,omitempty"`
	Texture   string `json:"texture,omitempty"`
	NormalMap string `json:"normal_map,omitempty"`
}

type MeshDoc struct {
	Name        string `json:"name"`
	FoliageType string `json:"foliage_type,omitempty"`
	Object      string `json:"object,omitempty"`
}

// RuleDoc is either a full rule (Replacement holds five rows) or a
// propagation rule (Propagate names the target symbol). Neighbors, when
// present, holds three rows.
type RuleDoc struct {
	Name        string   `json:"name,omitempty"`
	Match       string   `json:"match"`
	Neighbors   []string `json:"neighbors,omitempty"`
	Replacement []string `json:"replacement,omitempty"`
	Propagate   string   `json:"propagate,omitempty"`
}

type PatchDoc struct {
	Name         string       `json:"name,omitempty"`
	Symbol       string       `json:"symbol"`
	MinHeight    float64      `json:"min_height"`
	MaxHeight    float64      `json:"max_height"`
	Smoothing    *bool        `json:"smoothing,omitempty"`
	SmoothFactor *float64     `json:"smooth_factor,omitempty"`
	Noise        []NoiseDoc   `json:"noise,omitempty"`
	Paint        []PaintDoc   `json:"paint,omitempty"`
	Scatter      []ScatterDoc `json:"scatter,omitempty"`
}

// NoiseDoc leaves Frequency and Amplitude at the layer defaults when nil.
type NoiseDoc struct {
	Kind      string   `json:"kind"`
	Frequency *float64 `json:"frequency,omitempty"`
	Amplitude *float64 `json:"amplitude,omitempty"`
}

type PaintDoc struct {
	Texture   string    `json:"texture"`
	Weight    *float64  `json:"weight,omitempty"`
	Mask      *NoiseDoc `json:"mask,omitempty"`
	Below     bool      `json:"below,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Feather   float64   `json:"feather,omitempty"`
}

type ScatterDoc struct {
	Mesh      string   `json:"mesh"`
	MinRadius *float64 `json:"min_radius,omitempty"`
	MaxRadius *float64 `json:"max_radius,omitempty"`
}

// Decode reads one document from r. Unknown fields are rejected so typos
// in hand-written grammars surface early.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode grammar: %w", err)
	}
	return &doc, nil
}

// Encode writes doc as indented JSON.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Load decodes the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
