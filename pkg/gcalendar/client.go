// Package gcalendar wraps the Google Calendar API for class session
// scheduling. Bookings mirror into a calendar so trainers see their roster
// next to the rest of their day.
package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"golang.org/x/oauth2/google"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewFromCredentialsFile creates a Calendar client from a Service Account
// JSON file path.
func NewFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewFromCredentialsJSON(ctx, data)
}

// NewFromCredentialsJSON creates a Calendar client from raw Service Account
// JSON bytes.
func NewFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a calendar event and returns its assigned id.
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (*Event, error) {
	event := &calendar.Event{
		Summary:     input.Title,
		Description: input.Details,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.Timezone,
		},
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:      created.Id,
		Title:   created.Summary,
		Details: created.Description,
		Link:    created.HtmlLink,
		Start:   input.Start,
		End:     input.End,
	}, nil
}

// DeleteEvent removes a calendar event. Deleting an already-gone event is
// not an error.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if calendarID == "" {
		calendarID = "primary"
	}
	err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			return nil
		}
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}
