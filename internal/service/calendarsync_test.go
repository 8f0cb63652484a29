package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ops-console/backend/internal/client"
	"github.com/ops-console/backend/internal/model"
)

func TestCleanGoalTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "prefix-stripped", input: "Goal: Ship v2", want: "Ship v2"},
		{name: "case-insensitive", input: "goal: Ship v2", want: "Ship v2"},
		{name: "upper-case", input: "GOAL:   CKA Certification  ", want: "CKA Certification"},
		{name: "no-prefix", input: "Ship v2", want: "Ship v2"},
		{name: "leading-space", input: "  Goal: Ship v2", want: "Ship v2"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanGoalTitle(tt.input); got != tt.want {
				t.Fatalf("CleanGoalTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

type fakeCalendarAPI struct {
	// Search 파라미터가 있으면 goalEvents, 없으면 todayEvents 반환
	todayEvents []model.CalendarEvent
	goalEvents  []model.CalendarEvent
	todayErr    error
	goalErr     error
	queries     []client.EventQuery
}

func (f *fakeCalendarAPI) ListEvents(ctx context.Context, q client.EventQuery) ([]model.CalendarEvent, error) {
	f.queries = append(f.queries, q)
	if q.Search != "" {
		return f.goalEvents, f.goalErr
	}
	return f.todayEvents, f.todayErr
}

type fakeConfigStore struct {
	upserts map[string]string
	failOn  string
}

func (f *fakeConfigStore) UpsertConfig(ctx context.Context, key, value string) error {
	if f.failOn == key {
		return errors.New("db down")
	}
	if f.upserts == nil {
		f.upserts = make(map[string]string)
	}
	f.upserts[key] = value
	return nil
}

func TestSyncLearningStatus(t *testing.T) {
	api := &fakeCalendarAPI{
		todayEvents: []model.CalendarEvent{{Summary: "Kubernetes Network Policies"}},
		goalEvents:  []model.CalendarEvent{{Summary: "Goal: Ship v2"}},
	}
	store := &fakeConfigStore{}

	svc := NewCalendarSyncService(api, store)
	if err := svc.SyncLearningStatus(context.Background()); err != nil {
		t.Fatalf("SyncLearningStatus() error = %v", err)
	}

	if got := store.upserts[ConfigKeyLearningToday]; got != "Kubernetes Network Policies" {
		t.Fatalf("learningToday = %q", got)
	}
	if got := store.upserts[ConfigKeyYearGoal]; got != "Ship v2" {
		t.Fatalf("yearGoal = %q, want Ship v2", got)
	}
}

func TestSyncLearningStatusUntitledEvent(t *testing.T) {
	api := &fakeCalendarAPI{todayEvents: []model.CalendarEvent{{Summary: ""}}}
	store := &fakeConfigStore{}

	svc := NewCalendarSyncService(api, store)
	if err := svc.SyncLearningStatus(context.Background()); err != nil {
		t.Fatalf("SyncLearningStatus() error = %v", err)
	}

	if got := store.upserts[ConfigKeyLearningToday]; got != "Busy" {
		t.Fatalf("learningToday = %q, want Busy", got)
	}
}

func TestSyncLearningStatusNoCredentials(t *testing.T) {
	store := &fakeConfigStore{}

	svc := NewCalendarSyncService(nil, store)
	if err := svc.SyncLearningStatus(context.Background()); err != nil {
		t.Fatalf("SyncLearningStatus() error = %v, want graceful skip", err)
	}
	if len(store.upserts) != 0 {
		t.Fatalf("upserts = %v, want none", store.upserts)
	}
}

func TestSyncLearningStatusIndependentFailures(t *testing.T) {
	// 오늘 일정 조회가 실패해도 yearGoal은 계속 갱신된다
	api := &fakeCalendarAPI{
		todayErr:   errors.New("quota exceeded"),
		goalEvents: []model.CalendarEvent{{Summary: "Goal: CKA Certification"}},
	}
	store := &fakeConfigStore{}

	svc := NewCalendarSyncService(api, store)
	if err := svc.SyncLearningStatus(context.Background()); err == nil {
		t.Fatalf("SyncLearningStatus() error = nil, want first failure reported")
	}

	if got := store.upserts[ConfigKeyYearGoal]; got != "CKA Certification" {
		t.Fatalf("yearGoal = %q, want CKA Certification", got)
	}
	if _, ok := store.upserts[ConfigKeyLearningToday]; ok {
		t.Fatalf("learningToday should not be written when lookup fails")
	}
}

func TestSyncLearningStatusQueryWindows(t *testing.T) {
	api := &fakeCalendarAPI{}
	store := &fakeConfigStore{}

	svc := NewCalendarSyncService(api, store)
	fixed := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	if err := svc.SyncLearningStatus(context.Background()); err != nil {
		t.Fatalf("SyncLearningStatus() error = %v", err)
	}

	if len(api.queries) != 2 {
		t.Fatalf("queries = %d, want 2", len(api.queries))
	}

	today := api.queries[0]
	if !today.TimeMin.Equal(fixed) {
		t.Fatalf("today timeMin = %v, want %v", today.TimeMin, fixed)
	}
	wantEOD := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	if !today.TimeMax.Equal(wantEOD) {
		t.Fatalf("today timeMax = %v, want %v", today.TimeMax, wantEOD)
	}

	goal := api.queries[1]
	if goal.Search != "Goal:" {
		t.Fatalf("goal search = %q", goal.Search)
	}
	if goal.TimeMin.Year() != 2026 || goal.TimeMax.Year() != 2027 {
		t.Fatalf("goal window = %v .. %v, want current through next year", goal.TimeMin, goal.TimeMax)
	}
}
