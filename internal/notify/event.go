package notify

import "time"

// Event is one push-channel message. Type follows the "upload:<status>"
// convention for job events; Data is the JSON payload.
type Event struct {
	Type      string    `json:"type"`
	Data      any       `json:"data,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// UploadEventData is the payload for job state-change events.
type UploadEventData struct {
	JobID     string `json:"jobId"`
	FileName  string `json:"fileName"`
	Status    string `json:"status"`
	InvoiceID string `json:"invoiceId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Notifier pushes events to a user's open connections. Implementations must
// never block the caller.
type Notifier interface {
	SendToUser(userID string, evt Event)
	Broadcast(evt Event)
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) SendToUser(string, Event) {}
func (NopNotifier) Broadcast(Event)          {}
