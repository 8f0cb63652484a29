package service

import (
	"context"
	"log"
	"time"
)

// Scheduler - GitHub/Calendar sync를 고정 주기로 돌리는 백그라운드 작업
//
// 두 sync pass는 서로 배타적이지 않다. 적재는 append 위주라 동시
// 실행이 겹쳐도 DB의 external_id 유니크 제약이 중복을 막아준다.
type Scheduler struct {
	github   *GitHubSyncService
	calendar *CalendarSyncService
	interval time.Duration
}

func NewScheduler(github *GitHubSyncService, calendar *CalendarSyncService, interval time.Duration) *Scheduler {
	return &Scheduler{github: github, calendar: calendar, interval: interval}
}

// Run - 시작 즉시 1회 실행 후 interval마다 반복. ctx 취소로 종료
func (s *Scheduler) Run(ctx context.Context) {
	log.Printf("[Scheduler] Starting background sync every %s", s.interval)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[Scheduler] Stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce - sync pass 1회. 소스별 실패를 모아서 반환 (한쪽 실패가
// 다른 쪽을 막지 않는다)
func (s *Scheduler) RunOnce(ctx context.Context) map[string]error {
	errs := make(map[string]error)

	if err := s.github.SyncActivity(ctx); err != nil {
		errs["github"] = err
	}
	if err := s.calendar.SyncLearningStatus(ctx); err != nil {
		errs["calendar"] = err
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
