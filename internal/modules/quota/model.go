// README: Per-client fixed-window request quota.
package quota

import (
	"errors"
	"time"
)

// ErrQuotaExceeded is returned when a client has used its allowance for the current window.
var ErrQuotaExceeded = errors.New("quota exceeded")

// Decision describes one counted request.
type Decision struct {
	Count     int64
	Limit     int64
	Remaining int64
	ResetIn   time.Duration
}
