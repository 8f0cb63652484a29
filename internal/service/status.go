package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ops-console/backend/internal/model"
)

// statusStore - DB 인터페이스 (status 집계 전용)
type statusStore interface {
	GetConfigMap(ctx context.Context) (map[string]string, error)
	CountVisitors(ctx context.Context) (int64, error)
	GetLastDeploymentTime(ctx context.Context) (time.Time, bool, error)
	CountDeploymentsSince(ctx context.Context, since time.Time) (int64, error)
	CountLogsSince(ctx context.Context, since time.Time) (int64, error)
	CountErrorLogsSince(ctx context.Context, since time.Time) (int64, error)
}

// StatusService - /api/status 스냅샷 조립
type StatusService struct {
	repo   statusStore
	region string
	now    func() time.Time
}

func NewStatusService(repo statusStore, region string) *StatusService {
	return &StatusService{repo: repo, region: region, now: time.Now}
}

// GetStatus - 상태 스냅샷 1개 조립
//
// DB가 죽어 있어도 응답은 항상 성공한다. health 계산 중 실패하면
// infra 필드에 진단 문자열을 담고 나머지는 하드코딩 기본값으로 degrade.
func (s *StatusService) GetStatus(ctx context.Context) model.SystemStatus {
	configMap := map[string]string{}
	var visitorCount int64
	lastDeployTime := "Never"
	metrics := model.Metrics24h{}
	systemHealth := "Unknown"

	err := func() error {
		configs, err := s.repo.GetConfigMap(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		configMap = configs

		visitorCount, err = s.repo.CountVisitors(ctx)
		if err != nil {
			return fmt.Errorf("count visitors: %w", err)
		}

		lastDeploy, found, err := s.repo.GetLastDeploymentTime(ctx)
		if err != nil {
			return fmt.Errorf("last deployment: %w", err)
		}
		if found {
			lastDeployTime = FormatAge(s.now().Sub(lastDeploy))
		}

		yesterday := s.now().Add(-24 * time.Hour)
		if metrics.Deployments, err = s.repo.CountDeploymentsSince(ctx, yesterday); err != nil {
			return fmt.Errorf("count deployments: %w", err)
		}
		if metrics.Activity, err = s.repo.CountLogsSince(ctx, yesterday); err != nil {
			return fmt.Errorf("count activity: %w", err)
		}
		if metrics.Errors, err = s.repo.CountErrorLogsSince(ctx, yesterday); err != nil {
			return fmt.Errorf("count errors: %w", err)
		}

		return nil
	}()

	if err != nil {
		log.Printf("[API] Status DB calls failed: %v", err)
		systemHealth = "Error: " + truncate(err.Error(), 100)
	} else {
		systemHealth = "Healthy"
	}

	return model.SystemStatus{
		LearningToday: valueOr(configMap, "learningToday", "System Recovering..."),
		YearGoal:      valueOr(configMap, "yearGoal", "Stability"),
		ResumeURL:     valueOr(configMap, "resume_url", ""),
		CurrentRole: model.CurrentRole{
			Title:   valueOr(configMap, "currentRole_title", "DevOps Engineer"),
			Company: valueOr(configMap, "currentRole_company", "Unknown"),
			URL:     valueOr(configMap, "currentRole_url", "#"),
			Status:  valueOr(configMap, "currentRole_status", "Offline"),
		},
		SystemHealth: model.SystemHealth{
			Infra:          systemHealth,
			Visitors:       visitorCount,
			LastDeployment: lastDeployTime,
			Region:         s.region,
		},
		Metrics24h: metrics,
		LastUpdate: s.now(),
	}
}

// FormatAge - 배포 경과 시간을 분/시간/일 버킷으로 포맷
//
//	45분 전  → "45m ago"
//	3시간 전 → "3h ago"
//	2일 전   → "2d ago"
func FormatAge(d time.Duration) string {
	mins := int64(d.Minutes())
	if mins < 60 {
		return fmt.Sprintf("%dm ago", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

func valueOr(m map[string]string, key, fallback string) string {
	if val, ok := m[key]; ok && val != "" {
		return val
	}
	return fallback
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
