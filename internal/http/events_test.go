package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/croften/shout/internal/domain"
	shouthttp "github.com/croften/shout/internal/http"
	"github.com/croften/shout/internal/service"
	"github.com/stretchr/testify/assert"
)

type TestHelper struct {
	dir string
	ch  chan domain.NotificationEvent
}

func (h TestHelper) DataPath() string {
	return h.dir
}

func (h TestHelper) Invoke(string) func(interface{}) {
	return func(i interface{}) {
		h.ch <- i.(domain.NotificationEvent)
	}
}

func newServer(t *testing.T) (*httptest.Server, TestHelper) {
	helper := TestHelper{
		dir: t.TempDir(),
		ch:  make(chan domain.NotificationEvent, 4),
	}

	pipeline := service.NewPipeline(helper, helper)
	mux := shouthttp.NewChiMux(shouthttp.NewEventHandler(pipeline))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, helper
}

func putNotification(t *testing.T, srv *httptest.Server, bucket string) {
	config := domain.NotificationConfiguration{
		FunctionConfigurations: []domain.FunctionConfiguration{
			{
				Events:   []string{domain.ObjectCreatedFilter},
				Function: "shout-transform",
			},
		},
	}

	body, err := json.Marshal(config)
	if err != nil {
		t.Fatalf("Unable to marshal configuration: %v", err)
	}

	request, err := nethttp.NewRequest(nethttp.MethodPut, srv.URL+"/"+bucket+"/notification", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Unable to create request: %v", err)
	}

	response, err := srv.Client().Do(request)
	if err != nil {
		t.Fatalf("Unable to register notification: %v", err)
	}
	defer response.Body.Close()

	assert.Equal(t, nethttp.StatusOK, response.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := newServer(t)

	response, err := srv.Client().Get(srv.URL + "/healthz")
	assert.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, nethttp.StatusNoContent, response.StatusCode)
}

func TestPostEvents(t *testing.T) {
	srv, helper := newServer(t)
	putNotification(t, srv, "incoming-files")

	notification := domain.NewNotification("us-west-2", domain.NotificationEvent{
		Bucket: "incoming-files",
		Key:    "a b.txt",
		Event:  domain.ObjectCreatedEvent,
		Size:   11,
	})

	body, _ := json.Marshal(notification)
	response, err := srv.Client().Post(srv.URL+"/incoming-files/events", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, nethttp.StatusAccepted, response.StatusCode)

	select {
	case event := <-helper.ch:
		assert.Equal(t, "incoming-files", event.Bucket)
		assert.Equal(t, "a b.txt", event.Key)
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for event")
	}
}

func TestPostEventsMalformedNotification(t *testing.T) {
	srv, _ := newServer(t)
	putNotification(t, srv, "incoming-files")

	body, _ := json.Marshal(domain.Notification{})
	response, err := srv.Client().Post(srv.URL+"/incoming-files/events", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, nethttp.StatusBadRequest, response.StatusCode)
}

func TestPostEventsUnregisteredBucket(t *testing.T) {
	srv, _ := newServer(t)

	notification := domain.NewNotification("us-west-2", domain.NotificationEvent{
		Bucket: "unregistered",
		Key:    "notes.txt",
		Event:  domain.ObjectCreatedEvent,
	})

	body, _ := json.Marshal(notification)
	response, err := srv.Client().Post(srv.URL+"/unregistered/events", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, nethttp.StatusNotFound, response.StatusCode)
}
