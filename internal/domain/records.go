package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type S3Object struct {
	Key       string `json:"key"`
	Size      int64  `json:"size"`
	ETag      string `json:"eTag"`
	Sequencer string `json:"sequencer"`
}

// DecodedKey returns the object key with percent-encoding removed and literal
// '+' interpreted as space, matching how S3 encodes keys in notifications.
func (o S3Object) DecodedKey() (string, error) {
	return url.QueryUnescape(o.Key)
}

type S3BucketOwnerIdentity struct {
	PrincipalId string `json:"principalId"`
}

type S3Bucket struct {
	Name          string                `json:"name"`
	OwnerIdentity S3BucketOwnerIdentity `json:"ownerIdentity"`
	Arn           string                `json:"arn"`
}

type S3Entity struct {
	SchemaVersion   string   `json:"s3SchemaVersion"`
	ConfigurationId string   `json:"configurationId"`
	Bucket          S3Bucket `json:"bucket"`
	Object          S3Object `json:"object"`
}

type ResponseElements struct {
	RequestId string `json:"x-amz-request-id"`
	Id2       string `json:"x-amz-id-2"`
}

type RequestParameters struct {
	SourceIPAddress string `json:"sourceIPAddress"`
}

type UserIdentity struct {
	PrincipalId string `json:"principalId"`
}

type JsonTime time.Time

const timeFormat = "2006-01-02T15:04:05.999Z"

func (t JsonTime) MarshalJSON() ([]byte, error) {
	return []byte("\"" + time.Time(t).Format(timeFormat) + "\""), nil
}

func (t *JsonTime) UnmarshalJSON(data []byte) error {
	newTime, err := time.Parse(`"`+timeFormat+`"`, string(data))
	if err != nil {
		return err
	}

	*t = JsonTime(newTime)
	return nil
}

// Record is one object-creation (or removal) event as delivered by the
// storage platform.
type Record struct {
	EventVersion      string            `json:"eventVersion"`
	EventSource       string            `json:"eventSource"`
	AwsRegion         string            `json:"awsRegion"`
	EventTime         JsonTime          `json:"eventTime"`
	EventName         string            `json:"eventName"`
	UserIdentity      UserIdentity      `json:"userIdentity"`
	RequestParameters RequestParameters `json:"requestParameters"`
	ResponseElements  ResponseElements  `json:"responseElements"`
	S3                S3Entity          `json:"s3"`
}

// EventType maps the record's eventName (i.e. "ObjectCreated:Put") onto the
// coarse event family used by filter rules.
func (r Record) EventType() string {
	if strings.HasPrefix(r.EventName, "ObjectRemoved") {
		return ObjectRemovedEvent
	}
	return ObjectCreatedEvent
}

// Notification is the typed form of one storage event notification, which may
// carry multiple records.
type Notification struct {
	Records []Record `json:"Records"`
}

// Validate rejects notifications that are structurally unusable, before any
// processing starts.
func (n Notification) Validate() error {
	if len(n.Records) == 0 {
		return InvalidNotificationError{reason: "notification has no records"}
	}

	for i, record := range n.Records {
		if record.S3.Bucket.Name == "" {
			return InvalidNotificationError{reason: fmt.Sprintf("record %d has no bucket name", i)}
		}

		if record.S3.Object.Key == "" {
			return InvalidNotificationError{reason: fmt.Sprintf("record %d has no object key", i)}
		}

		if _, err := record.S3.Object.DecodedKey(); err != nil {
			return InvalidNotificationError{
				reason: fmt.Sprintf("record %d has malformed object key %s: %v", i, record.S3.Object.Key, err),
			}
		}
	}

	return nil
}

// NewNotification builds the canonical notification payload for a local
// event, in the same shape the storage platform delivers.
func NewNotification(region string, event NotificationEvent) Notification {
	return Notification{
		Records: []Record{
			{
				EventVersion:      "2.1",
				EventSource:       "aws:s3",
				AwsRegion:         region,
				EventTime:         JsonTime(time.Now().UTC()),
				EventName:         eventName(event.Event),
				RequestParameters: RequestParameters{SourceIPAddress: event.SourceIp},
				S3: S3Entity{
					SchemaVersion: "1.0",
					Bucket: S3Bucket{
						Name: event.Bucket,
						Arn:  "arn:aws:s3:::" + event.Bucket,
					},
					Object: S3Object{
						Key:  encodeKey(event.Key),
						Size: event.Size,
					},
				},
			},
		},
	}
}

func eventName(eventType string) string {
	if eventType == ObjectRemovedEvent {
		return "ObjectRemoved:Delete"
	}
	return "ObjectCreated:Put"
}

// encodeKey percent-encodes a key the way S3 does in notifications, keeping
// path separators intact.
func encodeKey(key string) string {
	return strings.ReplaceAll(url.QueryEscape(key), "%2F", "/")
}
