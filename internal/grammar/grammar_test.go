package grammar

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"lterrain/pkg/lsystem"
	"lterrain/pkg/noise"
)

func loadCoast(t *testing.T) (*Document, *lsystem.LSystem) {
	t.Helper()
	doc, err := Load(filepath.Join("testdata", "coast.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sys, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return doc, sys
}

func TestBuildCoast(t *testing.T) {
	doc, sys := loadCoast(t)
	if err := sys.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if doc.Depth != 2 || len(sys.Rules) != 5 || len(sys.Patches) != 4 {
		t.Fatalf("depth %d rules %d patches %d", doc.Depth, len(sys.Rules), len(sys.Patches))
	}
	if !sys.Rules[0].MatchNeighbors || sys.Rules[0].Neighbor(0, -1) != 'O' || sys.Rules[0].Name != "north shore" {
		t.Fatalf("neighbour rule not parsed: %+v", sys.Rules[0])
	}
	lowland := sys.Patches[2]
	if lowland.SmoothFactor() != 0.7 || !lowland.HeightSmoothing() {
		t.Fatalf("lowland smoothing %v/%v", lowland.HeightSmoothing(), lowland.SmoothFactor())
	}
	if lowland.Noise[0].Kind() != noise.Perlin || lowland.Noise[0].Frequency() != 2 || lowland.Noise[0].Amplitude() != lsystem.DefaultAmplitude {
		t.Fatalf("lowland noise %v f=%v a=%v", lowland.Noise[0].Kind(), lowland.Noise[0].Frequency(), lowland.Noise[0].Amplitude())
	}
	sc := lowland.Scatters[0]
	if sc.MinRadius() != 4 || sc.MaxRadius() != 9 || sc.Mesh != sys.MeshAssets[0] {
		t.Fatalf("scatter %v..%v", sc.MinRadius(), sc.MaxRadius())
	}
	rock := sys.Patches[3].PaintWeights[1]
	if rock.Mask == nil || rock.Threshold != 0.2 || rock.Feather != 0.3 || !rock.AboveThreshold {
		t.Fatalf("rock paint weight %+v", rock)
	}
	if sys.Patches[0].HeightSmoothing() {
		t.Fatalf("ocean smoothing should be off")
	}

	chain := sys.Regenerate(1)
	g := chain.Finest()
	if g.Side() != 25 {
		t.Fatalf("side %d", g.Side())
	}
	for _, c := range []lsystem.Code{'O', 'B', 'L', 'H'} {
		if g.Count(c) == 0 {
			t.Fatalf("expected some %s cells:\n%s", c, g)
		}
	}
	if g.Count(lsystem.MatchAny) != 0 {
		t.Fatalf("wildcard leaked into the grid")
	}
}

func TestRoundTripPreservesExpansion(t *testing.T) {
	orig := lsystem.New()
	orig.GenerateSomeDefaults()

	var buf bytes.Buffer
	if err := FromSystem(orig, 2).Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	doc, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	copied, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(copied.Rules) != len(orig.Rules) || len(copied.Patches) != len(orig.Patches) {
		t.Fatalf("rules %d/%d patches %d/%d", len(copied.Rules), len(orig.Rules), len(copied.Patches), len(orig.Patches))
	}
	want := orig.Regenerate(doc.Depth).Finest()
	got := copied.Regenerate(doc.Depth).Finest()
	if !got.Equal(want) {
		t.Fatalf("expansion differs after round trip")
	}
	for i, p := range orig.Patches {
		q := copied.Patches[i]
		if p.MinHeight() != q.MinHeight() || p.MaxHeight() != q.MaxHeight() || p.SmoothFactor() != q.SmoothFactor() {
			t.Fatalf("patch %q heights changed", p.Name)
		}
		if len(p.PaintWeights) != len(q.PaintWeights) || len(p.Scatters) != len(q.Scatters) {
			t.Fatalf("patch %q layers changed", p.Name)
		}
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"depth": 1, "symbolz": []}`))
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]string{
		"bad code":        `{"symbols": [{"code": "AB"}], "seed": []}`,
		"wildcard symbol": `{"symbols": [{"code": "*"}], "seed": []}`,
		"unknown texture": `{"symbols": [{"code": "A"}], "patches": [{"symbol": "A", "paint": [{"texture": "Nope"}]}], "seed": ["A"]}`,
		"unknown mesh":    `{"symbols": [{"code": "A"}], "patches": [{"symbol": "A", "scatter": [{"mesh": "Nope"}]}], "seed": ["A"]}`,
		"short rule":      `{"symbols": [{"code": "A"}], "rules": [{"match": "A", "replacement": ["AAA", "AAA", "AAA"]}], "seed": ["A"]}`,
		"both forms":      `{"symbols": [{"code": "A"}], "rules": [{"match": "A", "propagate": "A", "replacement": ["AAAAA"]}], "seed": ["A"]}`,
		"ragged seed":     `{"symbols": [{"code": "A"}], "seed": ["AA", "A"]}`,
		"noise kind":      `{"symbols": [{"code": "A"}], "patches": [{"symbol": "A", "noise": [{"kind": "brown"}]}], "seed": ["A"]}`,
	}
	for name, src := range cases {
		doc, err := Decode(strings.NewReader(src))
		if err != nil {
			t.Fatalf("%s: decode: %v", name, err)
		}
		if _, err := doc.Build(); err == nil {
			t.Fatalf("%s: expected build error", name)
		}
	}
	doc, _ := Decode(strings.NewReader(`{"symbols": [{"code": "AB"}], "seed": []}`))
	if _, err := doc.Build(); !errors.Is(err, ErrBadCode) {
		t.Fatalf("want ErrBadCode, got %v", err)
	}
}

func TestFetchLocalFile(t *testing.T) {
	src, err := filepath.Abs(filepath.Join("testdata", "coast.json"))
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	doc, err := LoadRemote(context.Background(), src, t.TempDir(), log)
	if err != nil {
		t.Fatalf("LoadRemote: %v", err)
	}
	if doc.Name != "coast" || len(doc.Symbols) != 4 {
		t.Fatalf("unexpected document %q with %d symbols", doc.Name, len(doc.Symbols))
	}
}
