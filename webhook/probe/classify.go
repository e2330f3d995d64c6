package probe

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"

	"github.com/marcelsud/webhook-console/webhook"
)

/* classifyError maps a transport failure to a failure point and error code
 * Order matters: timeouts first, then resolution and dial failures
 */
func classifyError(err error) (webhook.FailurePoint, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return webhook.FailureTimeout, "ETIMEDOUT"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return webhook.FailureTimeout, "ETIMEDOUT"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return webhook.FailureConnection, "ENOTFOUND"
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return webhook.FailureConnection, "ECONNREFUSED"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return webhook.FailureConnection, "ECONNFAILED"
	}

	if errors.Is(err, syscall.ECONNRESET) {
		return webhook.FailureNetwork, "ECONNRESET"
	}
	return webhook.FailureNetwork, ""
}

// classifyStatus returns the empty failure point for delivered requests
func classifyStatus(code int) webhook.FailurePoint {
	switch {
	case code >= http.StatusInternalServerError:
		return webhook.FailureServerError
	case code == http.StatusUnauthorized:
		return webhook.FailureAuthentication
	case code == http.StatusForbidden:
		return webhook.FailureAuthorization
	case code >= http.StatusBadRequest:
		return webhook.FailureClientError
	case code >= http.StatusOK:
		return ""
	default:
		// 1xx never reaches us as a final response
		return webhook.FailureUnknown
	}
}
