package probe

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/marcelsud/webhook-console/webhook"
)

const docsWebhooks = "https://kontent.ai/learn/docs/webhooks/webhooks"

type guidance struct {
	stage      string
	suggestion string
	causes     []string
	actions    []string
	solutions  []string
	docs       []string
}

// byFailurePoint is the generic guide for each class
var byFailurePoint = map[webhook.FailurePoint]guidance{
	webhook.FailureConnection: {
		stage:      "Connection",
		suggestion: "Check that the URL is correct and that the server is running and reachable from the internet.",
		causes:     []string{"Hostname does not resolve", "Server is not running", "Firewall blocks incoming connections"},
		actions:    []string{"Verify the webhook URL", "Check that the endpoint host resolves in DNS", "Confirm the server is listening on the expected port"},
		solutions:  []string{"Monitor endpoint availability", "Use a stable public hostname for the receiver"},
		docs:       []string{docsWebhooks},
	},
	webhook.FailureTimeout: {
		stage:      "Response",
		suggestion: "The endpoint did not answer within the time limit. Respond quickly and process the notification asynchronously.",
		causes:     []string{"Endpoint performs slow work before responding", "Server is overloaded", "Network latency to the receiver"},
		actions:    []string{"Check the receiver logs for slow requests", "Return 200 before doing heavy processing"},
		solutions:  []string{"Queue notifications for background processing", "Scale the receiving service"},
		docs:       []string{docsWebhooks},
	},
	webhook.FailureNetwork: {
		stage:      "Network",
		suggestion: "The request failed at the network level. Check TLS configuration and any proxies between the platform and the endpoint.",
		causes:     []string{"TLS certificate is invalid or expired", "Connection was reset by a proxy", "Unsupported protocol"},
		actions:    []string{"Open the URL with an HTTP client to check the certificate", "Review proxy and load balancer logs"},
		solutions:  []string{"Automate certificate renewal", "Terminate TLS at a well-known load balancer"},
		docs:       []string{docsWebhooks},
	},
	webhook.FailureValidation: {
		stage:      "Request Validation",
		suggestion: "The webhook URL cannot be used for delivery. Use an absolute http or https URL.",
		causes:     []string{"URL is missing the scheme", "URL uses an unsupported scheme", "URL has no host"},
		actions:    []string{"Edit the webhook and correct the URL"},
		solutions:  []string{"Copy endpoint URLs from the receiver's configuration"},
	},
	webhook.FailureAuthentication: {
		stage:      "Authentication",
		suggestion: "The endpoint requires authentication. Add the expected credentials as a custom header.",
		causes:     []string{"Missing Authorization header", "Expired or rotated token", "Signature secret mismatch"},
		actions:    []string{"Add the Authorization header to the webhook", "Check that the secret matches the receiver"},
		solutions:  []string{"Validate requests with the webhook signature instead of static tokens"},
		docs:       []string{docsWebhooks},
	},
	webhook.FailureAuthorization: {
		stage:      "Authorization",
		suggestion: "The endpoint rejected the credentials. Check the permissions granted to them.",
		causes:     []string{"Credentials lack permission for this endpoint", "IP allow list blocks the platform"},
		actions:    []string{"Review the receiver's access rules", "Allow the platform's outgoing addresses"},
		solutions:  []string{"Use a dedicated credential scoped to webhook delivery"},
		docs:       []string{docsWebhooks},
	},
	webhook.FailureClientError: {
		stage:      "Request Processing",
		suggestion: "The endpoint rejected the request. Check the receiver logs for the reason.",
		causes:     []string{"Endpoint does not accept the payload", "Wrong HTTP method or path"},
		actions:    []string{"Inspect the response body", "Check the receiver logs"},
		solutions:  []string{"Make the receiver accept every notification type it subscribes to"},
		docs:       []string{docsWebhooks},
	},
	webhook.FailureServerError: {
		stage:      "Server Processing",
		suggestion: "The endpoint failed while processing the request. Check the receiver logs for errors.",
		causes:     []string{"Unhandled exception in the receiver", "Dependency of the receiver is down", "Deployment in progress"},
		actions:    []string{"Check the receiver error logs", "Retry the test after the service recovers"},
		solutions:  []string{"Add error handling around notification processing", "Alert on receiver error rates"},
		docs:       []string{docsWebhooks},
	},
	webhook.FailureUnknown: {
		stage:      "Unknown",
		suggestion: "The request ended in an unexpected state. Retry the test and check the receiver logs.",
		causes:     []string{"Unexpected response from the endpoint"},
		actions:    []string{"Retry the test"},
		solutions:  []string{"Report the error together with the webhook configuration"},
	},
}

// byStatus refines client errors with bespoke guidance
var byStatus = map[int]guidance{
	400: {
		stage:      "Request Processing",
		suggestion: "The endpoint could not parse the request. Make sure it accepts a JSON body.",
		causes:     []string{"Receiver expects a different payload format", "Required header is missing"},
		actions:    []string{"Compare the request payload with what the receiver expects", "Check the Content-Type handling"},
		solutions:  []string{"Accept unknown fields in the payload"},
		docs:       []string{docsWebhooks},
	},
	401: byFailurePoint[webhook.FailureAuthentication],
	403: byFailurePoint[webhook.FailureAuthorization],
	404: {
		stage:      "Routing",
		suggestion: "The endpoint was not found. Check the URL path.",
		causes:     []string{"Typo in the URL path", "Route was removed or renamed", "Service deployed under a different base path"},
		actions:    []string{"Verify the full URL including the path", "Check the receiver's route table"},
		solutions:  []string{"Version webhook routes so old URLs keep working"},
		docs:       []string{docsWebhooks},
	},
	422: {
		stage:      "Payload Validation",
		suggestion: "The endpoint rejected the payload content. Check the receiver's validation rules.",
		causes:     []string{"Receiver validates fields the test payload does not carry", "Schema mismatch"},
		actions:    []string{"Inspect the response body for validation messages", "Allow test payloads through validation"},
		solutions:  []string{"Recognize the X-Webhook-Test header and short-circuit test requests"},
		docs:       []string{docsWebhooks},
	},
}

func lookup(fp webhook.FailurePoint, status int) guidance {
	if fp == webhook.FailureClientError || fp == webhook.FailureAuthentication || fp == webhook.FailureAuthorization {
		if g, ok := byStatus[status]; ok {
			return g
		}
	}
	if g, ok := byFailurePoint[fp]; ok {
		return g
	}
	return byFailurePoint[webhook.FailureUnknown]
}

// diagnose builds a failed result from the lookup tables
func diagnose(fp webhook.FailurePoint, status int, message, code string, body []byte, headers map[string]string, info *webhook.NetworkInfo, elapsed time.Duration) webhook.ProbeResult {
	g := lookup(fp, status)
	return webhook.ProbeResult{
		Success:      false,
		StatusCode:   status,
		ResponseTime: elapsed.Milliseconds(),
		Error:        message,
		FailurePoint: fp,
		FailureDetails: &webhook.FailureDetails{
			Stage:           g.stage,
			ErrorCode:       code,
			ErrorMessage:    message,
			Suggestion:      g.suggestion,
			RequestPayload:  json.RawMessage(slices.Clone(body)),
			ResponseHeaders: headers,
			NetworkInfo:     info,
		},
		Troubleshooting: &webhook.Troubleshooting{
			CommonCauses:      slices.Clone(g.causes),
			ImmediateActions:  slices.Clone(g.actions),
			LongTermSolutions: slices.Clone(g.solutions),
			RelatedDocs:       slices.Clone(g.docs),
		},
	}
}
