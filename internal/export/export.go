// Package export writes synthesized terrain to disk: 16-bit heightmaps
// and 8-bit weightmaps for engines, coloured previews for people, and the
// placement list as JSON.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"lterrain/internal/render"
	"lterrain/pkg/lsystem"
	"lterrain/pkg/synth"

	"golang.org/x/image/draw"
)

// Writer writes files into Dir. Scale enlarges preview images; raw maps
// are always written at their native size.
type Writer struct {
	Dir   string
	Log   *slog.Logger
	Scale int
}

// NewWriter returns a writer for dir, creating it if needed.
func NewWriter(dir string, scale int, log *slog.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export dir: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Writer{Dir: dir, Log: log, Scale: max(scale, 1)}, nil
}

// WriteSymbols renders a level of detail through palette, one block of
// Scale×Scale pixels per cell.
func (w *Writer) WriteSymbols(name string, g *lsystem.Grid, palette []color.RGBA) (string, error) {
	side := g.Side()
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	codes := g.Codes()
	cells := make([]uint8, len(codes))
	for i, c := range codes {
		cells[i] = uint8(c)
	}
	render.FillPaletteRGBA(img.Pix, cells, palette)
	return w.writePNG(name, w.scaled(img, draw.NearestNeighbor))
}

// WriteHeightmap writes hm as a 16-bit grayscale PNG spanning [lo, hi],
// the usual import format for engine heightfields.
func (w *Writer) WriteHeightmap(name string, hm *synth.Heightmap, lo, hi float64) (string, error) {
	img := image.NewGray16(image.Rect(0, 0, hm.W, hm.H))
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			t := render.Normalize(hm.At(x, y), lo, hi)
			img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(t * math.MaxUint16))})
		}
	}
	return w.writePNG(name, img)
}

// WriteHeightPreview writes hm through the height colour ramp, smoothed
// when enlarged.
func (w *Writer) WriteHeightPreview(name string, hm *synth.Heightmap) (string, error) {
	lo, hi := hm.Range()
	img := image.NewRGBA(image.Rect(0, 0, hm.W, hm.H))
	render.FillHeightRGBA(img.Pix, hm.Data, lo, hi, 255)
	return w.writePNG(name, w.scaled(img, draw.BiLinear))
}

// WriteWeightmap writes layer i of wm as an 8-bit grayscale PNG.
func (w *Writer) WriteWeightmap(name string, wm *synth.Weightmaps, i int) (string, error) {
	if i < 0 || i >= len(wm.Data) {
		return "", fmt.Errorf("weightmap %d of %d", i, len(wm.Data))
	}
	img := image.NewGray(image.Rect(0, 0, wm.W, wm.H))
	for j, v := range wm.Data[i] {
		img.Pix[j] = uint8(math.Round(min(max(v, 0), 1) * 255))
	}
	return w.writePNG(name, img)
}

// PlacementRecord is the JSON form of one placement.
type PlacementRecord struct {
	Mesh      string      `json:"mesh"`
	Object    string      `json:"object,omitempty"`
	Patch     string      `json:"patch"`
	Position  [3]float32  `json:"position"`
	Yaw       float32     `json:"yaw"`
	Transform [16]float32 `json:"transform"`
}

// Records converts placements to their JSON form.
func Records(ps []synth.Placement) []PlacementRecord {
	out := make([]PlacementRecord, 0, len(ps))
	for _, p := range ps {
		r := PlacementRecord{Position: p.Position, Yaw: p.Yaw, Transform: p.Transform}
		if p.Mesh != nil {
			r.Mesh = p.Mesh.Name
			r.Object = string(p.Mesh.Object)
		}
		if p.Patch != nil {
			r.Patch = p.Patch.Name
		}
		out = append(out, r)
	}
	return out
}

// WritePlacements writes the placement list as a JSON array.
func (w *Writer) WritePlacements(name string, ps []synth.Placement) (string, error) {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Records(ps)); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	w.Log.Info("wrote placements", "path", path, "count", len(ps))
	return path, nil
}

func (w *Writer) scaled(src image.Image, s draw.Scaler) image.Image {
	if w.Scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*w.Scale, b.Dy()*w.Scale))
	s.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func (w *Writer) writePNG(name string, img image.Image) (string, error) {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	b := img.Bounds()
	w.Log.Info("wrote image", "path", path, "w", b.Dx(), "h", b.Dy())
	return path, nil
}
