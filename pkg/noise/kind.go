package noise

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported noise variants.
type Kind uint8

const (
	// White is uncorrelated lattice noise.
	White Kind = iota
	// Pink sums simplex octaves with a 1/f power falloff.
	Pink
	// Blue is white noise with its low frequencies removed.
	Blue
	// Perlin is classic gradient noise.
	Perlin
)

var kindNames = [...]string{
	White:  "white",
	Pink:   "pink",
	Blue:   "blue",
	Perlin: "perlin",
}

// Kinds lists every variant in declaration order.
func Kinds() []Kind { return []Kind{White, Pink, Blue, Perlin} }

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the known variants.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// ParseKind resolves a variant from its name, case-insensitively. The
// "noise" suffix used by authoring tools ("Perlin Noise") is accepted.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSpace(strings.TrimSuffix(name, "noise"))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown noise kind %q", s)
}
