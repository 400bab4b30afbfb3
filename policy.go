package promoter

// Policy holds the promotion level and the strict flag.
//
// The zero value is a usable policy: LevelMajor, not strict.
// Setters mutate the receiver and are not synchronized; sorting methods take
// the policy by value, so each call sees the configuration as it was when the
// call started. Hand a resolution run its own copy instead of sharing one
// mutable Policy between goroutines.
type Policy struct {
	level  Level
	strict bool
}

// NewPolicy builds a policy from a level name and the strict flag.
func NewPolicy(level string, strict bool) (Policy, error) {
	var p Policy
	if err := p.SetLevel(level); err != nil {
		return Policy{}, err
	}

	p.strict = strict
	return p, nil
}

// Level returns the current promotion level.
func (p Policy) Level() Level {
	return p.level
}

// SetLevel parses and stores the level. On error the previous level is kept.
func (p *Policy) SetLevel(value string) error {
	l, err := ParseLevel(value)
	if err != nil {
		return err
	}

	p.level = l
	return nil
}

// SetLevelValue stores an already typed level after validating it.
func (p *Policy) SetLevelValue(l Level) error {
	if !l.Valid() {
		return invalidLevel(l.String())
	}

	p.level = l
	return nil
}

// Strict reports whether candidates outside the level's scope are dropped.
func (p Policy) Strict() bool {
	return p.strict
}

// SetStrict toggles strict mode.
func (p *Policy) SetStrict(strict bool) {
	p.strict = strict
}

// IsMajor reports whether the level is LevelMajor.
func (p Policy) IsMajor() bool {
	return p.level == LevelMajor
}

// IsMinor reports whether the level is LevelMinor.
func (p Policy) IsMinor() bool {
	return p.level == LevelMinor
}

// WithLevel returns a copy of p with the level replaced.
func (p Policy) WithLevel(value string) (Policy, error) {
	if err := p.SetLevel(value); err != nil {
		return p, err
	}

	return p, nil
}

// WithStrict returns a copy of p with strict replaced.
func (p Policy) WithStrict(strict bool) Policy {
	p.strict = strict
	return p
}
