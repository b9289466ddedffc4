package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"workout-core/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*gcalendar.Client, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewFromHTTP(context.Background(), tsClient)
	if err != nil {
		ts.Close()
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts.Close
}

func TestCalendarClient(t *testing.T) {
	t.Run("Initialize With Broken Credentials", func(t *testing.T) {
		_, err := gcalendar.NewFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize From File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Create Event E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "Morning HIIT",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		event, err := client.CreateEvent(context.Background(), gcalendar.EventInput{
			Title:   "Morning HIIT",
			Details: "Trainer: Alex",
			Start:   time.Now(),
			End:     time.Now().Add(45 * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" {
			t.Errorf("unexpected event id: %s", event.ID)
		}
		if event.Link != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.Link)
		}
	})

	t.Run("Create Event Error E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer closeFn()

		_, err := client.CreateEvent(context.Background(), gcalendar.EventInput{Title: "Doomed"})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})

	t.Run("Delete Event E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			if strings.Contains(r.URL.Path, "broken-event") {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
			t.Fatalf("failed to delete event: %v", err)
		}
		// Already-gone events are not an error, cancellation stays idempotent.
		if err := client.DeleteEvent(context.Background(), "", "missing-event"); err != nil {
			t.Fatalf("unexpected error deleting already-gone event: %v", err)
		}
		if err := client.DeleteEvent(context.Background(), "", "broken-event"); err == nil {
			t.Fatalf("expected delete error on server failure")
		}
	})
}
