package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ops-console/backend/internal/model"
)

func TestFormatAge(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{name: "minutes", age: 45 * time.Minute, want: "45m ago"},
		{name: "hours", age: 3 * time.Hour, want: "3h ago"},
		{name: "days", age: 48 * time.Hour, want: "2d ago"},
		{name: "just-now", age: 30 * time.Second, want: "0m ago"},
		{name: "hour-boundary", age: 60 * time.Minute, want: "1h ago"},
		{name: "day-boundary", age: 24 * time.Hour, want: "1d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAge(tt.age); got != tt.want {
				t.Fatalf("FormatAge(%v) = %q, want %q", tt.age, got, tt.want)
			}
		})
	}
}

type fakeStatusStore struct {
	configs     map[string]string
	visitors    int64
	lastDeploy  time.Time
	hasDeploy   bool
	deployments int64
	activity    int64
	errCount    int64
	failWith    error
}

func (f *fakeStatusStore) GetConfigMap(ctx context.Context) (map[string]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.configs, nil
}

func (f *fakeStatusStore) CountVisitors(ctx context.Context) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return f.visitors, nil
}

func (f *fakeStatusStore) GetLastDeploymentTime(ctx context.Context) (time.Time, bool, error) {
	if f.failWith != nil {
		return time.Time{}, false, f.failWith
	}
	return f.lastDeploy, f.hasDeploy, nil
}

func (f *fakeStatusStore) CountDeploymentsSince(ctx context.Context, since time.Time) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return f.deployments, nil
}

func (f *fakeStatusStore) CountLogsSince(ctx context.Context, since time.Time) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return f.activity, nil
}

func (f *fakeStatusStore) CountErrorLogsSince(ctx context.Context, since time.Time) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return f.errCount, nil
}

func TestGetStatusHealthy(t *testing.T) {
	store := &fakeStatusStore{
		configs: map[string]string{
			"learningToday":     "Kubernetes Network Policies",
			"yearGoal":          "CKA Certification",
			"currentRole_title": "Automation Engineer",
		},
		visitors:    42,
		lastDeploy:  time.Now().Add(-45 * time.Minute),
		hasDeploy:   true,
		deployments: 3,
		activity:    10,
		errCount:    1,
	}

	svc := NewStatusService(store, "ap-south-1")
	status := svc.GetStatus(context.Background())

	if status.SystemHealth.Infra != "Healthy" {
		t.Fatalf("infra = %q, want Healthy", status.SystemHealth.Infra)
	}
	if status.SystemHealth.LastDeployment != "45m ago" {
		t.Fatalf("lastDeployment = %q, want 45m ago", status.SystemHealth.LastDeployment)
	}
	if status.SystemHealth.Visitors != 42 {
		t.Fatalf("visitors = %d, want 42", status.SystemHealth.Visitors)
	}
	if status.SystemHealth.Region != "ap-south-1" {
		t.Fatalf("region = %q, want ap-south-1", status.SystemHealth.Region)
	}
	if status.LearningToday != "Kubernetes Network Policies" {
		t.Fatalf("learningToday = %q", status.LearningToday)
	}
	if status.CurrentRole.Title != "Automation Engineer" {
		t.Fatalf("role title = %q", status.CurrentRole.Title)
	}
	if status.Metrics24h != (model.Metrics24h{Deployments: 3, Activity: 10, Errors: 1}) {
		t.Fatalf("metrics = %+v", status.Metrics24h)
	}
}

func TestGetStatusDegraded(t *testing.T) {
	store := &fakeStatusStore{failWith: errors.New("connection refused")}

	svc := NewStatusService(store, "Edge")
	status := svc.GetStatus(context.Background())

	// DB가 죽어도 응답 자체는 기본값으로 채워진다
	if !strings.HasPrefix(status.SystemHealth.Infra, "Error:") {
		t.Fatalf("infra = %q, want Error: prefix", status.SystemHealth.Infra)
	}
	if !strings.Contains(status.SystemHealth.Infra, "connection refused") {
		t.Fatalf("infra = %q, want diagnostic detail", status.SystemHealth.Infra)
	}
	if status.CurrentRole.Title != "DevOps Engineer" {
		t.Fatalf("role title = %q, want DevOps Engineer", status.CurrentRole.Title)
	}
	if status.CurrentRole.Status != "Offline" {
		t.Fatalf("role status = %q, want Offline", status.CurrentRole.Status)
	}
	if status.SystemHealth.LastDeployment != "Never" {
		t.Fatalf("lastDeployment = %q, want Never", status.SystemHealth.LastDeployment)
	}
	if status.LearningToday != "System Recovering..." {
		t.Fatalf("learningToday = %q", status.LearningToday)
	}
}

func TestGetStatusNoDeployments(t *testing.T) {
	store := &fakeStatusStore{configs: map[string]string{}}

	svc := NewStatusService(store, "Edge")
	status := svc.GetStatus(context.Background())

	if status.SystemHealth.Infra != "Healthy" {
		t.Fatalf("infra = %q, want Healthy", status.SystemHealth.Infra)
	}
	if status.SystemHealth.LastDeployment != "Never" {
		t.Fatalf("lastDeployment = %q, want Never", status.SystemHealth.LastDeployment)
	}
}
