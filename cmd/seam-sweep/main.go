package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"lterrain/internal/presets/archipelago"
	"lterrain/pkg/synth"
)

type scenario struct {
	smooth float64
	seed   int64
}

func (s scenario) String() string {
	return fmt.Sprintf("smooth=%.2f seed=%d", s.smooth, s.seed)
}

type scenarioResult struct {
	scenario
	boundaryMean  float64
	boundaryMax   float64
	interiorMean  float64
	boundaryPairs int
	err           error
}

// ratio compares jumps across symbol boundaries with jumps inside patches.
// Values near 1 mean boundaries are no rougher than the terrain itself.
func (r scenarioResult) ratio() float64 {
	if r.interiorMean == 0 {
		return math.Inf(1)
	}
	return r.boundaryMean / r.interiorMean
}

func main() {
	res := flag.Int("res", 257, "heightmap side per scenario")
	seeds := flag.Int("seeds", 4, "seeds per smoothing factor")
	depth := flag.Int("depth", 2, "expansion steps")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	smoothOptions := []float64{0, 0.25, 0.5, 0.75, 1}
	var sets []scenario
	for _, smooth := range smoothOptions {
		for i := 0; i < *seeds; i++ {
			sets = append(sets, scenario{smooth: smooth, seed: 1337 + int64(i)*7919})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, res %d, depth %d)\n", len(sets), *workers, *res, *depth)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *res, *depth)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for r := range results {
		if r.err != nil {
			log.Error("scenario failed", "scenario", r.scenario.String(), "err", r.err)
			continue
		}
		all = append(all, r)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ratio() < all[j].ratio() })
	elapsed := time.Since(start)

	fmt.Printf("\nSmoothest 5 (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		r := all[i]
		fmt.Printf("%2d) ratio=%.3f boundary=%.3f (max %.2f, %d pairs) interior=%.3f %s\n",
			i+1, r.ratio(), r.boundaryMean, r.boundaryMax, r.boundaryPairs, r.interiorMean, r.scenario)
	}

	fmt.Println("\nBy smoothing factor:")
	for _, smooth := range smoothOptions {
		var sum float64
		n := 0
		for _, r := range all {
			if r.smooth == smooth {
				sum += r.ratio()
				n++
			}
		}
		if n > 0 {
			fmt.Printf("  smooth=%.2f mean ratio=%.3f over %d seeds\n", smooth, sum/float64(n), n)
		}
	}
}

func runScenario(sc scenario, res, depth int) scenarioResult {
	cfg := archipelago.FromMap(map[string]string{
		"seed":          strconv.FormatInt(sc.seed, 10),
		"depth":         strconv.Itoa(depth),
		"smooth_factor": strconv.FormatFloat(sc.smooth, 'g', -1, 64),
		"resolution":    strconv.Itoa(res),
		"workers":       "1",
	})
	world := archipelago.New(cfg)
	s := world.Synthesizer()

	hm := synth.NewHeightmap(res, res)
	if _, err := s.SynthesizeGrid(hm, nil); err != nil {
		return scenarioResult{scenario: sc, err: err}
	}
	return measureSeams(sc, s, hm)
}

// measureSeams compares height steps between horizontally and vertically
// adjacent samples, split by whether the two samples resolve to different
// symbols.
func measureSeams(sc scenario, s *synth.Synthesizer, hm *synth.Heightmap) scenarioResult {
	out := scenarioResult{scenario: sc}
	symbols := make([]byte, hm.W*hm.H)
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			symbols[y*hm.W+x] = byte(s.SymbolAt(coord(x, hm.W), coord(y, hm.H)))
		}
	}
	var boundarySum, interiorSum float64
	interiorPairs := 0
	visit := func(a, b int) {
		d := math.Abs(hm.Data[a] - hm.Data[b])
		if symbols[a] != symbols[b] {
			boundarySum += d
			out.boundaryPairs++
			out.boundaryMax = math.Max(out.boundaryMax, d)
			return
		}
		interiorSum += d
		interiorPairs++
	}
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			i := y*hm.W + x
			if x+1 < hm.W {
				visit(i, i+1)
			}
			if y+1 < hm.H {
				visit(i, i+hm.W)
			}
		}
	}
	if out.boundaryPairs > 0 {
		out.boundaryMean = boundarySum / float64(out.boundaryPairs)
	}
	if interiorPairs > 0 {
		out.interiorMean = interiorSum / float64(interiorPairs)
	}
	return out
}

func coord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
