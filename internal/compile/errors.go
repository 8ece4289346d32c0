package compile

import "fmt"

// MalformedSourceError reports a source frame missing required fields. It is
// fatal for the run: it indicates an authoring-tool schema break, not a
// content gap.
type MalformedSourceError struct {
	Character string
	Animation string
	Frame     int
	Reason    string
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed source: character %s, animation %s, frame %d: %s",
		e.Character, e.Animation, e.Frame, e.Reason)
}

// OverrideMismatchError reports an override referencing a frame index
// outside the animation's actual length. A silent no-op here is a latent
// bug, so the build fails instead.
type OverrideMismatchError struct {
	Character string
	Animation string
	Frame     int
	Kind      string // "duration" or "attack-box"
}

func (e *OverrideMismatchError) Error() string {
	return fmt.Sprintf("%s override out of range: character %s, animation %s has no frame %d",
		e.Kind, e.Character, e.Animation, e.Frame)
}

// MissingIdleError reports a character table assembled without an idle
// animation. The lookup fallback contract depends on idle unconditionally,
// so this is fatal at construction.
type MissingIdleError struct {
	Character string
}

func (e *MissingIdleError) Error() string {
	return fmt.Sprintf("character %s has no idle animation in its assembled table", e.Character)
}
