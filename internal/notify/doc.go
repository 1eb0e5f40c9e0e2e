// Package notify delivers outbound notifications via the clawdbot CLI.
//
// The client wraps the clawdbot command-line tool and requires it to be
// installed and configured on the system. Deliveries are bounded by a fixed
// timeout; failures are reported as *NotifyError and are expected to be
// logged rather than propagated by callers on the webhook path.
package notify
