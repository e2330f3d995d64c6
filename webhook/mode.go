package webhook

import "fmt"

/* Mode represents which backend serves Registry operations
 * API routes through the management REST API
 * Fallback routes through the local in-memory simulation
 */
type Mode int

const (
	ModeUnknown Mode = iota
	ModeAPI
	ModeFallback
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeAPI:
		return "api"
	case ModeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Description returns a human-readable explanation for the UI banner
func (m Mode) Description() string {
	switch m {
	case ModeAPI:
		return "Connected to the management API. Changes are saved to the environment."
	case ModeFallback:
		return "No management API key configured. Changes are simulated locally and kept for this session only."
	default:
		return "A management API key is configured but no environment id is known. Changes are simulated locally until an environment id is available."
	}
}

// MarshalText encodes the mode as its string form
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Validate checks if the mode is valid
func (m Mode) Validate() error {
	if m < ModeUnknown || m > ModeFallback {
		return fmt.Errorf("invalid mode: %d", m)
	}
	return nil
}

// Remote reports whether operations go to the management API
func (m Mode) Remote() bool {
	return m == ModeAPI
}
