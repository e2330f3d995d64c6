package webhook

import "fmt"

/* FailurePoint is the closed classification of why a probe did not succeed
 * The zero value means no failure was diagnosed
 */
type FailurePoint string

const (
	FailureConnection     FailurePoint = "connection"
	FailureTimeout        FailurePoint = "timeout"
	FailureAuthentication FailurePoint = "authentication"
	FailureAuthorization  FailurePoint = "authorization"
	FailureValidation     FailurePoint = "validation"
	FailureServerError    FailurePoint = "server_error"
	FailureClientError    FailurePoint = "client_error"
	FailureNetwork        FailurePoint = "network"
	FailureUnknown        FailurePoint = "unknown"
)

// FailurePoints lists every classification in display order
var FailurePoints = []FailurePoint{
	FailureConnection,
	FailureTimeout,
	FailureAuthentication,
	FailureAuthorization,
	FailureValidation,
	FailureServerError,
	FailureClientError,
	FailureNetwork,
	FailureUnknown,
}

// String returns the string representation of the failure point
func (f FailurePoint) String() string {
	return string(f)
}

// Validate checks if the failure point is one of the known classifications
func (f FailurePoint) Validate() error {
	for _, known := range FailurePoints {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("invalid failure point: %q", string(f))
}

// IsTransport returns true if the probe never received an HTTP response
func (f FailurePoint) IsTransport() bool {
	return f == FailureConnection || f == FailureTimeout || f == FailureNetwork
}
