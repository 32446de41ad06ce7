package tile

import (
	"strconv"
	"strings"
)

type Kind uint8

const (
	Empty Kind = iota
	Grass
	Path
	Road
	Water
	Track

	KindCount
)

type footprint struct {
	W, H int
}

var kindNames = [KindCount]string{
	Empty: "Empty",
	Grass: "Grass",
	Path:  "Path",
	Road:  "Road",
	Water: "Water",
	Track: "Track",
}

var kindFootprints = [KindCount]footprint{
	Empty: {1, 1},
	Grass: {1, 1},
	Path:  {1, 1},
	Road:  {2, 2},
	Water: {1, 1},
	Track: {1, 1},
}

// Kinds that auto-connect to their neighbours. Everything else always
// renders with a single fixed shape.
var kindConnects = [KindCount]bool{
	Road:  true,
	Water: true,
	Track: true,
}

var kindTraversable = [KindCount]bool{
	Path: true,
}

// compatible[a] has bit b set when a and b join up. Kept symmetric.
var compatible = [KindCount]uint16{
	Grass: 1 << Grass,
	Path:  1<<Path | 1<<Road,
	Road:  1<<Road | 1<<Path,
	Water: 1 << Water,
	Track: 1 << Track,
}

func (k Kind) Valid() bool {
	return k < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return kindNames[k]
}

// Footprint returns the width and height in cells a placement of k covers.
func (k Kind) Footprint() (w, h int) {
	if !k.Valid() {
		return 1, 1
	}
	f := kindFootprints[k]
	return f.W, f.H
}

func (k Kind) Connects() bool {
	return k.Valid() && kindConnects[k]
}

func (k Kind) Traversable() bool {
	return k.Valid() && kindTraversable[k]
}

// Compatible reports whether a and b join up across a shared edge.
// Empty is compatible with nothing.
func Compatible(a, b Kind) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return compatible[a]&(1<<b) != 0
}

// ParseKind accepts either the numeric value or the name of a kind.
func ParseKind(s string) (Kind, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= int(KindCount) {
			return Empty, false
		}
		return Kind(n), true
	}
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return Kind(k), true
		}
	}
	return Empty, false
}
