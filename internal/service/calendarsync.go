package service

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/ops-console/backend/internal/client"
	"github.com/ops-console/backend/internal/model"
)

// Config Store 키
const (
	ConfigKeyLearningToday = "learningToday"
	ConfigKeyYearGoal      = "yearGoal"
)

// calendarAPI - Calendar 클라이언트 인터페이스 (sync 전용)
type calendarAPI interface {
	ListEvents(ctx context.Context, q client.EventQuery) ([]model.CalendarEvent, error)
}

// configUpserter - DB 인터페이스 (sync 전용)
type configUpserter interface {
	UpsertConfig(ctx context.Context, key, value string) error
}

var goalPrefixRe = regexp.MustCompile(`(?i)^\s*Goal:\s*`)

// CalendarSyncService - 오늘의 학습 일정과 연간 목표를 Config Store에 반영
type CalendarSyncService struct {
	api  calendarAPI // nil이면 자격 증명이 없는 상태 (skip)
	repo configUpserter
	now  func() time.Time
}

func NewCalendarSyncService(api calendarAPI, repo configUpserter) *CalendarSyncService {
	return &CalendarSyncService{api: api, repo: repo, now: time.Now}
}

// SyncLearningStatus - sync pass 1회 실행
//
// learningToday와 yearGoal 갱신은 서로 독립이라 한쪽이 실패해도
// 다른 쪽은 계속 진행한다. 자격 증명이 없으면 에러 없이 스킵.
func (s *CalendarSyncService) SyncLearningStatus(ctx context.Context) error {
	log.Printf("[Calendar] Syncing learning status...")

	if s.api == nil {
		log.Printf("[Calendar] Service account not configured. Skipping sync.")
		return nil
	}

	var firstErr error

	if err := s.syncLearningToday(ctx); err != nil {
		log.Printf("[Calendar] Failed to sync today's learning: %v", err)
		firstErr = err
	}

	if err := s.syncYearGoal(ctx); err != nil {
		log.Printf("[Calendar] Failed to sync year goal: %v", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// syncLearningToday - 지금부터 오늘 자정까지의 첫 이벤트 → learningToday
func (s *CalendarSyncService) syncLearningToday(ctx context.Context) error {
	now := s.now()
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	events, err := s.api.ListEvents(ctx, client.EventQuery{
		TimeMin:    now,
		TimeMax:    endOfDay,
		MaxResults: 1,
	})
	if err != nil {
		return err
	}

	if len(events) == 0 {
		log.Printf("[Calendar] No learning scheduled for rest of day.")
		return nil
	}

	title := events[0].Summary
	if title == "" {
		title = "Busy"
	}

	log.Printf("[Calendar] Found current/next learning: %s", title)
	return s.repo.UpsertConfig(ctx, ConfigKeyLearningToday, title)
}

// syncYearGoal - 올해 초부터 내년 말까지 "Goal:" 검색 → 첫 이벤트 → yearGoal
func (s *CalendarSyncService) syncYearGoal(ctx context.Context) error {
	now := s.now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	nextYearEnd := time.Date(now.Year()+1, time.December, 31, 23, 59, 59, 0, now.Location())

	events, err := s.api.ListEvents(ctx, client.EventQuery{
		TimeMin:    yearStart,
		TimeMax:    nextYearEnd,
		MaxResults: 1,
		Search:     "Goal:",
	})
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	cleanGoal := CleanGoalTitle(events[0].Summary)
	log.Printf("[Calendar] Found Year Goal: %s", cleanGoal)
	return s.repo.UpsertConfig(ctx, ConfigKeyYearGoal, cleanGoal)
}

// CleanGoalTitle - "Goal:" 접두사(대소문자 무시)와 양끝 공백 제거
func CleanGoalTitle(title string) string {
	return strings.TrimSpace(goalPrefixRe.ReplaceAllString(title, ""))
}
