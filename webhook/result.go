package webhook

import (
	"encoding/json"
	"maps"
	"slices"
	"time"
)

// ProbeTarget is the webhook snapshot handed to a Prober
type ProbeTarget struct {
	URL         string
	Headers     map[string]string
	Secret      string
	WebhookID   string
	WebhookName string
}

/* ProbeResult is the outcome of one synthetic request
 * FailurePoint, FailureDetails and Troubleshooting are absent on success
 */
type ProbeResult struct {
	Success         bool             `json:"success"`
	StatusCode      int              `json:"statusCode"`
	ResponseTime    int64            `json:"responseTime"`
	Response        string           `json:"response"`
	Error           string           `json:"error,omitempty"`
	FailurePoint    FailurePoint     `json:"failurePoint,omitempty"`
	FailureDetails  *FailureDetails  `json:"failureDetails,omitempty"`
	Troubleshooting *Troubleshooting `json:"troubleshooting,omitempty"`
}

// FailureDetails describes where and why a probe failed
type FailureDetails struct {
	Stage           string            `json:"stage"`
	ErrorCode       string            `json:"errorCode,omitempty"`
	ErrorMessage    string            `json:"errorMessage"`
	Suggestion      string            `json:"suggestion"`
	RequestPayload  json.RawMessage   `json:"requestPayload,omitempty"`
	ResponseHeaders map[string]string `json:"responseHeaders,omitempty"`
	NetworkInfo     *NetworkInfo      `json:"networkInfo,omitempty"`
}

// NetworkInfo records how far the request got before failing
type NetworkInfo struct {
	DNSResolution         bool `json:"dnsResolution"`
	TLSHandshake          bool `json:"tlsHandshake"`
	ConnectionEstablished bool `json:"connectionEstablished"`
	RequestSent           bool `json:"requestSent"`
	ResponseReceived      bool `json:"responseReceived"`
}

// Troubleshooting is the remediation guide attached to a failed probe
type Troubleshooting struct {
	CommonCauses      []string `json:"commonCauses"`
	ImmediateActions  []string `json:"immediateActions"`
	LongTermSolutions []string `json:"longTermSolutions"`
	RelatedDocs       []string `json:"relatedDocs,omitempty"`
}

// TestResult is the immutable history record of one probe
type TestResult struct {
	ID        string    `json:"id"`
	WebhookID string    `json:"webhookId"`
	Timestamp time.Time `json:"timestamp"`
	ProbeResult
}

// Clone returns a deep copy, history records never share memory with callers
func (r ProbeResult) Clone() ProbeResult {
	c := r
	if r.FailureDetails != nil {
		d := *r.FailureDetails
		d.RequestPayload = slices.Clone(r.FailureDetails.RequestPayload)
		d.ResponseHeaders = maps.Clone(r.FailureDetails.ResponseHeaders)
		if r.FailureDetails.NetworkInfo != nil {
			n := *r.FailureDetails.NetworkInfo
			d.NetworkInfo = &n
		}
		c.FailureDetails = &d
	}
	if r.Troubleshooting != nil {
		c.Troubleshooting = &Troubleshooting{
			CommonCauses:      slices.Clone(r.Troubleshooting.CommonCauses),
			ImmediateActions:  slices.Clone(r.Troubleshooting.ImmediateActions),
			LongTermSolutions: slices.Clone(r.Troubleshooting.LongTermSolutions),
			RelatedDocs:       slices.Clone(r.Troubleshooting.RelatedDocs),
		}
	}
	return c
}

// Clone returns a deep copy of the record
func (r TestResult) Clone() TestResult {
	c := r
	c.ProbeResult = r.ProbeResult.Clone()
	return c
}

// Diagnosed reports whether a failure diagnosis is attached
func (r ProbeResult) Diagnosed() bool {
	return r.FailurePoint != "" && r.FailureDetails != nil && r.Troubleshooting != nil
}

// unknownFailure builds the result recorded when the prober itself errors
func unknownFailure(err error, elapsed time.Duration) ProbeResult {
	return ProbeResult{
		Success:      false,
		ResponseTime: elapsed.Milliseconds(),
		Error:        err.Error(),
		FailurePoint: FailureUnknown,
		FailureDetails: &FailureDetails{
			Stage:        "Unknown",
			ErrorMessage: err.Error(),
			Suggestion:   "An unexpected error occurred while testing the webhook. Retry the test and check the application logs.",
		},
		Troubleshooting: &Troubleshooting{
			CommonCauses:      []string{"Unexpected internal error", "Malformed webhook configuration"},
			ImmediateActions:  []string{"Retry the test", "Review the webhook URL and headers"},
			LongTermSolutions: []string{"Report the error together with the webhook configuration"},
		},
	}
}
