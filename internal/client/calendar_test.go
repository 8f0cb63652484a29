package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestListEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendars/primary/events" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("singleEvents") != "true" || q.Get("orderBy") != "startTime" {
			t.Fatalf("query = %v", q)
		}
		if q.Get("maxResults") != "1" {
			t.Fatalf("maxResults = %q, want 1", q.Get("maxResults"))
		}
		if q.Get("q") != "Goal:" {
			t.Fatalf("q = %q, want Goal:", q.Get("q"))
		}
		if _, err := time.Parse(time.RFC3339, q.Get("timeMin")); err != nil {
			t.Fatalf("timeMin not RFC3339: %q", q.Get("timeMin"))
		}
		w.Write([]byte(`{"items": [{"id": "ev1", "summary": "Goal: CKA Certification", "start": {"date": "2026-01-01"}}]}`))
	}))
	defer srv.Close()

	c := newCalendarClientWithHTTP(srv.Client(), "primary", srv.URL)
	events, err := c.ListEvents(context.Background(), EventQuery{
		TimeMin:    time.Now(),
		MaxResults: 1,
		Search:     "Goal:",
	})
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != 1 || events[0].Summary != "Goal: CKA Certification" {
		t.Fatalf("events = %+v", events)
	}
}

func TestListEventsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Invalid Credentials"}}`))
	}))
	defer srv.Close()

	c := newCalendarClientWithHTTP(srv.Client(), "primary", srv.URL)
	if _, err := c.ListEvents(context.Background(), EventQuery{}); err == nil {
		t.Fatalf("ListEvents() error = nil, want API error")
	}
}

func TestResolveServiceAccountNotFound(t *testing.T) {
	_, err := ResolveServiceAccount("", "", calendarReadonlyScope)
	if !errors.Is(err, ErrCredentialsNotFound) {
		t.Fatalf("error = %v, want ErrCredentialsNotFound", err)
	}

	_, err = ResolveServiceAccount("", filepath.Join(t.TempDir(), "missing.json"), calendarReadonlyScope)
	if !errors.Is(err, ErrCredentialsNotFound) {
		t.Fatalf("missing file error = %v, want ErrCredentialsNotFound", err)
	}
}

func TestResolveServiceAccountInvalid(t *testing.T) {
	_, err := ResolveServiceAccount("not json at all", "", calendarReadonlyScope)
	if !errors.Is(err, ErrCredentialsInvalid) {
		t.Fatalf("inline error = %v, want ErrCredentialsInvalid", err)
	}

	keyFile := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(keyFile, []byte(`{"type": "not-a-service-account"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = ResolveServiceAccount("", keyFile, calendarReadonlyScope)
	if !errors.Is(err, ErrCredentialsInvalid) {
		t.Fatalf("file error = %v, want ErrCredentialsInvalid", err)
	}
}
