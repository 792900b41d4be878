package notify

import "time"

// ReconnectPolicy is the client-observed reconnection contract for the push
// channel: exponential backoff, capped, with a maximum attempt count after
// which the client must fall back to polling GET /uploads/recent.
type ReconnectPolicy struct {
	Initial     time.Duration `json:"initialMs"`
	Max         time.Duration `json:"maxMs"`
	Multiplier  float64       `json:"multiplier"`
	MaxAttempts int           `json:"maxAttempts"`
}

// DefaultReconnectPolicy is advertised to clients.
var DefaultReconnectPolicy = ReconnectPolicy{
	Initial:     time.Second,
	Max:         30 * time.Second,
	Multiplier:  2,
	MaxAttempts: 10,
}

// Delay returns the wait before reconnect attempt n (1-based), or false when
// the attempt budget is exhausted and the caller must stop retrying.
func (p ReconnectPolicy) Delay(attempt int) (time.Duration, bool) {
	if attempt < 1 || attempt > p.MaxAttempts {
		return 0, false
	}
	d := p.Initial
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * p.Multiplier)
		if d >= p.Max {
			return p.Max, true
		}
	}
	if d > p.Max {
		d = p.Max
	}
	return d, true
}
