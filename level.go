package promoter

import "fmt"

// Level is the requested promotion aggressiveness for a dependency.
type Level uint8

const (
	// LevelMajor lets a dependency move anywhere. It is the default.
	LevelMajor Level = iota
	// LevelMinor keeps the locked major and lets minor and patch move.
	LevelMinor
	// LevelPatch keeps the locked major and minor and lets only patch move.
	LevelPatch
)

// String returns a stable textual representation for Level.
func (l Level) String() string {
	switch l {
	case LevelMajor:
		return "major"
	case LevelMinor:
		return "minor"
	case LevelPatch:
		return "patch"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	return l <= LevelPatch
}

// ParseLevel maps a level name to Level (case-insensitive, surrounding
// spaces and a leading ':' symbol marker are ignored):
//
//	"major", "minor", "patch"
//
// Any other value fails with an error wrapping ErrInvalidArgument.
func ParseLevel(s string) (Level, error) {
	switch toTok(s) {
	case "major":
		return LevelMajor, nil
	case "minor":
		return LevelMinor, nil
	case "patch":
		return LevelPatch, nil
	default:
		return LevelMajor, invalidLevel(s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, invalidLevel(l.String())
	}

	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error l is left as is.
func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}

	*l = v
	return nil
}

// UnmarshalFlag implements flags.Unmarshaler.
func (l *Level) UnmarshalFlag(value string) error {
	return l.UnmarshalText([]byte(value))
}
