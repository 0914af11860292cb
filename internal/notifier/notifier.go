// Package notifier delivers transactional emails. Sends are single
// attempts with no retry or queue; callers decide whether a failed
// send is fatal.
package notifier

import "context"

// Message is a single outbound email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Notifier attempts to deliver an email and reports success or failure.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
