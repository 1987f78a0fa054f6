package domain

const (
	ObjectCreatedEvent = "s3:ObjectCreated"
	ObjectRemovedEvent = "s3:ObjectRemoved"
)

// NotificationEvent is the internal form of one object-level event flowing
// through the local pipeline. Key is already decoded.
type NotificationEvent struct {
	Bucket   string
	Key      string
	Event    string // event family (i.e. "s3:ObjectCreated", "s3:ObjectRemoved")
	SourceIp string
	Size     int64
}
