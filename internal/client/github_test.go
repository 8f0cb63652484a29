package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListUserEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/rushiraj/events" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("per_page"); got != "10" {
			t.Fatalf("per_page = %q, want 10", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"id": "100",
				"type": "PushEvent",
				"repo": {"id": 1, "name": "rushiraj/portfolio-console"},
				"payload": {
					"ref": "refs/heads/main",
					"head": "abc123",
					"commits": [{"sha": "abc123", "message": "fix: metrics"}]
				},
				"created_at": "2026-08-30T12:00:00Z"
			}
		]`))
	}))
	defer srv.Close()

	c := NewGitHubClient("test-token", "rushiraj", srv.URL)
	events, err := c.ListUserEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListUserEvents() error = %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.ID != "100" || ev.Type != "PushEvent" {
		t.Fatalf("event = %+v", ev)
	}
	if ev.Repo.Name != "rushiraj/portfolio-console" {
		t.Fatalf("repo = %q", ev.Repo.Name)
	}
	if len(ev.Payload.Commits) != 1 || ev.Payload.Commits[0].Message != "fix: metrics" {
		t.Fatalf("commits = %+v", ev.Payload.Commits)
	}
}

func TestGetRepo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/rushiraj/portfolio-console" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"full_name": "rushiraj/portfolio-console", "private": true, "homepage": "https://rushiraj.dev", "has_pages": false}`))
	}))
	defer srv.Close()

	c := NewGitHubClient("test-token", "rushiraj", srv.URL)
	repo, err := c.GetRepo(context.Background(), "rushiraj/portfolio-console")
	if err != nil {
		t.Fatalf("GetRepo() error = %v", err)
	}
	if !repo.Private || repo.Homepage != "https://rushiraj.dev" {
		t.Fatalf("repo = %+v", repo)
	}
}

func TestGetCommit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/rushiraj/infra/commits/main" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"sha": "c9", "commit": {"message": "real message"}}`))
	}))
	defer srv.Close()

	c := NewGitHubClient("test-token", "rushiraj", srv.URL)
	commit, err := c.GetCommit(context.Background(), "rushiraj/infra", "main")
	if err != nil {
		t.Fatalf("GetCommit() error = %v", err)
	}
	if commit.SHA != "c9" || commit.Commit.Message != "real message" {
		t.Fatalf("commit = %+v", commit)
	}
}

func TestGitHubAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "rate limit exceeded"}`))
	}))
	defer srv.Close()

	c := NewGitHubClient("test-token", "rushiraj", srv.URL)
	if _, err := c.ListUserEvents(context.Background(), 10); err == nil {
		t.Fatalf("ListUserEvents() error = nil, want API error")
	}
}

func TestIsConfigured(t *testing.T) {
	if NewGitHubClient("", "rushiraj", "").IsConfigured() {
		t.Fatalf("empty token should not be configured")
	}
	if !NewGitHubClient("tok", "rushiraj", "").IsConfigured() {
		t.Fatalf("token set should be configured")
	}
}
