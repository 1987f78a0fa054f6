package http

import (
	"encoding/json"
	"net/http"

	"github.com/croften/shout/internal/domain"
	"github.com/croften/shout/internal/service"
	"github.com/go-chi/chi/v5"
)

type EventHandler struct {
	pipeline *service.Pipeline
}

func NewEventHandler(pipeline *service.Pipeline) EventHandler {
	return EventHandler{
		pipeline: pipeline,
	}
}

func (h EventHandler) Health(response http.ResponseWriter, request *http.Request) {
	response.WriteHeader(http.StatusNoContent)
}

// PutNotification registers the NotificationConfiguration for a bucket.
func (h EventHandler) PutNotification(response http.ResponseWriter, request *http.Request) {
	bucket := chi.URLParam(request, "bucket")

	var config domain.NotificationConfiguration
	err := json.NewDecoder(request.Body).Decode(&config)
	if err != nil {
		logger.Errorf("Unable to decode NotificationConfiguration for bucket %s: %v", bucket, err)
		http.Error(response, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.pipeline.Register(bucket, config)
	if err != nil {
		http.Error(response, err.Error(), http.StatusInternalServerError)
		return
	}

	response.WriteHeader(http.StatusOK)
}

// PostEvents feeds each record of a notification into the bucket's stream.
func (h EventHandler) PostEvents(response http.ResponseWriter, request *http.Request) {
	bucket := chi.URLParam(request, "bucket")

	var notification domain.Notification
	err := json.NewDecoder(request.Body).Decode(&notification)
	if err != nil {
		logger.Errorf("Unable to decode notification for bucket %s: %v", bucket, err)
		http.Error(response, err.Error(), http.StatusBadRequest)
		return
	}

	err = notification.Validate()
	if err != nil {
		logger.Error(err)
		http.Error(response, err.Error(), http.StatusBadRequest)
		return
	}

	for _, record := range notification.Records {
		key, _ := record.S3.Object.DecodedKey()
		event := domain.NotificationEvent{
			Bucket:   bucket,
			Key:      key,
			Event:    record.EventType(),
			SourceIp: record.RequestParameters.SourceIPAddress,
			Size:     record.S3.Object.Size,
		}

		err = h.pipeline.ProcessEvent(event)
		if err != nil {
			http.Error(response, err.Error(), http.StatusNotFound)
			return
		}
	}

	response.WriteHeader(http.StatusAccepted)
}
