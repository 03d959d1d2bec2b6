// Package input maps key codes to cube rotation deltas.
package input

// Key is an input key code. Typed characters use their Unicode code point;
// special keys are negative so no character can collide with them.
type Key int

// Named ASCII keys used by the app.
const (
	KeyBackspace Key = 8
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeyDelete    Key = 127
)

// Special keys that produce no character.
const (
	KeyUp Key = -1 - iota
	KeyDown
	KeyLeft
	KeyRight
)

// IsSpecial reports whether k is a special key rather than a character.
func (k Key) IsSpecial() bool { return k < 0 }

// Delta is a rotation change in degrees around X, Y and Z.
type Delta struct {
	DX, DY, DZ float32
}

// IsZero reports whether d leaves the rotation unchanged.
func (d Delta) IsZero() bool { return d == Delta{} }

// Mapper resolves a key to a rotation delta. Unmapped keys yield a zero Delta.
type Mapper interface {
	MapKey(k Key) Delta
}

// DefaultStep is the rotation applied per key press, in degrees.
const DefaultStep = 5

// Table is a fixed key → delta mapping.
type Table map[Key]Delta

// MapKey implements Mapper.
func (t Table) MapKey(k Key) Delta {
	return t[k]
}

// DefaultTable binds w/s to X, a/d to Y and q/e to Z, in both cases.
// A step of zero or less uses DefaultStep.
func DefaultTable(step float32) Table {
	if step <= 0 {
		step = DefaultStep
	}
	t := Table{}
	bind := func(c byte, d Delta) {
		t[Key(c)] = d
		t[Key(c-'a'+'A')] = d
	}
	bind('w', Delta{DX: -step})
	bind('s', Delta{DX: step})
	bind('a', Delta{DY: -step})
	bind('d', Delta{DY: step})
	bind('q', Delta{DZ: -step})
	bind('e', Delta{DZ: step})
	return t
}

// IsRotationKey reports whether k is one of the default rotation keys.
func IsRotationKey(k Key) bool {
	switch k {
	case 'w', 'W', 's', 'S', 'a', 'A', 'd', 'D', 'q', 'Q', 'e', 'E':
		return true
	}
	return false
}
