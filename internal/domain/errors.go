package domain

// InvalidNotificationError marks a notification that was rejected before
// processing, distinct from failures while handling a well-formed one.
type InvalidNotificationError struct {
	reason string
}

func (e InvalidNotificationError) Error() string {
	return "invalid event notification: " + e.reason
}
