package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"lterrain/internal/core"
)

// controlState tracks one HUD row: the parsed current value and the hit
// boxes of its -/+ buttons in panel coordinates.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// setters bundles the optional write side of a generator.
type setters struct {
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
}

func settersFor(gen core.Generator) setters {
	var s setters
	s.ints, _ = gen.(core.IntParameterSetter)
	s.floats, _ = gen.(core.FloatParameterSetter)
	return s
}

func newControlStates(gen core.Generator) []controlState {
	provider, ok := gen.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	controls := provider.ParameterControls()
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	return states
}

// refresh parses the control's value out of snap.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
	default:
		return
	}
	s.hasValue = true
}

// intTarget is the clamped value one step in direction, and whether that
// differs from the current value.
func (s *controlState) intTarget(direction int) (int, bool) {
	step := int(math.Round(s.control.Step))
	if step <= 0 {
		step = 1
	}
	target := s.intValue + direction*step
	if s.control.HasMin {
		target = max(target, int(math.Round(s.control.Min)))
	}
	if s.control.HasMax {
		target = min(target, int(math.Round(s.control.Max)))
	}
	return target, target != s.intValue
}

func (s *controlState) floatTarget(direction int) (float64, bool) {
	step := s.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := s.floatValue + float64(direction)*step
	if s.control.HasMin {
		target = max(target, s.control.Min)
	}
	if s.control.HasMax {
		target = min(target, s.control.Max)
	}
	return target, math.Abs(target-s.floatValue) >= 1e-9
}

func (s *controlState) canAdjust(w setters, direction int) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		_, moved := s.intTarget(direction)
		return w.ints != nil && moved
	case core.ParamTypeFloat:
		_, moved := s.floatTarget(direction)
		return w.floats != nil && moved
	}
	return false
}

// adjust applies one step through the setters. It reports whether the
// generator accepted the change.
func (s *controlState) adjust(w setters, direction int) bool {
	if !s.canAdjust(w, direction) {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		target, _ := s.intTarget(direction)
		if !w.ints.SetIntParameter(s.control.Key, target) {
			return false
		}
		s.intValue = target
		s.floatValue = float64(target)
		s.value = strconv.Itoa(target)
	case core.ParamTypeFloat:
		target, _ := s.floatTarget(direction)
		if !w.floats.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
	}
	return true
}

func layoutControls(states []controlState, width int) {
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
}

// hit returns the control index and direction under panel point (x, y).
func hit(states []controlState, x, y int) (int, int, bool) {
	pt := image.Pt(x, y)
	for i := range states {
		switch {
		case pt.In(states[i].minusRect):
			return i, -1, true
		case pt.In(states[i].plusRect):
			return i, 1, true
		}
	}
	return 0, 0, false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// title names the panel after the generator and its current level of detail.
func title(gen core.Generator) string {
	if gen == nil || gen.Name() == "" {
		return "Controls"
	}
	name := gen.Name()
	r, n := utf8.DecodeRuneInString(name)
	name = string(unicode.ToUpper(r)) + name[n:]
	return fmt.Sprintf("%s  LoD %d", name, gen.Depth())
}

// statusLines are the read-only rows drawn under the controls.
func statusLines(gen core.Generator, view int) []string {
	size := gen.Size()
	lines := []string{
		fmt.Sprintf("grid %dx%d", size.W, size.H),
		fmt.Sprintf("viewing LoD %d/%d", view, gen.Depth()),
	}
	if p, ok := gen.(core.ParameterProvider); ok {
		if seed, ok := p.Parameters().Lookup("seed"); ok {
			lines = append(lines, "seed "+seed.Value)
		}
	}
	return append(lines, strings.Split(keyHelp, "\n")...)
}

const keyHelp = `N iterate  R reset  S reseed
[ ] LoD  P slideshow
1 height  2 objects  3 layers`

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
