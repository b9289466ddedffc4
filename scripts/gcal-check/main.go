// scripts/gcal-check/main.go
//
// Verifies a Google Calendar service-account setup by creating and then
// deleting a short test event.
//
// Usage:
//   go run scripts/gcal-check/main.go [credentials.json] [calendar-id]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"workout-core/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	calendarID := "primary"
	if len(os.Args) > 2 {
		calendarID = os.Args[2]
	}

	ctx := context.Background()
	client, err := gcalendar.NewFromCredentialsFile(ctx, credsPath)
	if err != nil {
		log.Fatalf("Failed to load credentials %q: %v", credsPath, err)
	}

	start := time.Now().Add(time.Hour)
	event, err := client.CreateEvent(ctx, gcalendar.EventInput{
		CalendarID: calendarID,
		Title:      "workout-core setup check",
		Details:    "Created by scripts/gcal-check, safe to delete.",
		Start:      start,
		End:        start.Add(15 * time.Minute),
	})
	if err != nil {
		log.Fatalf("Failed to create test event: %v", err)
	}
	fmt.Printf("Created event %s (%s)\n", event.ID, event.Link)

	if err := client.DeleteEvent(ctx, calendarID, event.ID); err != nil {
		log.Fatalf("Failed to delete test event %s: %v", event.ID, err)
	}
	fmt.Println("Deleted test event, calendar access is working.")
}
