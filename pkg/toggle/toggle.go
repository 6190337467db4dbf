// Package toggle provides a boolean switch with explicit enable, disable and
// flip operations. It carries no other state.
package toggle

type Toggle struct {
	enabled bool
}

func New(enabled bool) Toggle {
	return Toggle{enabled: enabled}
}

func (t Toggle) Enabled() bool { return t.enabled }

func (t *Toggle) Enable()  { t.enabled = true }
func (t *Toggle) Disable() { t.enabled = false }
func (t *Toggle) Flip()    { t.enabled = !t.enabled }

// Set switches the toggle to the given state.
func (t *Toggle) Set(enabled bool) { t.enabled = enabled }

func (t Toggle) String() string {
	if t.enabled {
		return "on"
	}
	return "off"
}
