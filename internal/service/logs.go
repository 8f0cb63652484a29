package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ops-console/backend/internal/model"
)

// Resume 다운로드 로그 메시지 접두사 (뒤에 방문자 IP가 붙는다)
const resumeDownloadPrefix = "Resume Download by visitor :"

// logStore - DB 인터페이스 (로그 조회/기록 전용)
type logStore interface {
	GetLogs(ctx context.Context, filter model.LogFilter) ([]model.LogEntry, error)
	InsertLog(ctx context.Context, entry model.LogEntry) error
}

// LogsService - 로그 조회(프라이버시 필터 포함)와 방문자 액션 기록
type LogsService struct {
	repo     logStore
	adminIPs map[string]struct{}
}

func NewLogsService(repo logStore, adminIPs []string) *LogsService {
	ipSet := make(map[string]struct{}, len(adminIPs))
	for _, ip := range adminIPs {
		ipSet[ip] = struct{}{}
	}
	return &LogsService{repo: repo, adminIPs: ipSet}
}

// GetLogs - 필터 적용 최신순 조회 + 읽기 시점 프라이버시 변환
//
// IP가 박힌 Resume Download 메시지는 관리자 주소가 아니면 generic
// 메시지로 바꿔서 내보낸다. 저장된 행 자체는 건드리지 않는다.
func (s *LogsService) GetLogs(ctx context.Context, filter model.LogFilter, requesterIP string) ([]model.LogResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	logs, err := s.repo.GetLogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	isAdmin := s.IsAdminIP(requesterIP)

	formatted := make([]model.LogResponse, 0, len(logs))
	for _, l := range logs {
		message := l.Message
		if strings.HasPrefix(message, resumeDownloadPrefix) && !isAdmin {
			message = "Resume Download by Visitor"
		}

		formatted = append(formatted, model.LogResponse{
			ID:        l.ID,
			Timestamp: l.Timestamp,
			Category:  l.Category,
			Severity:  l.Level,
			Message:   message,
			Details:   l.Details,
		})
	}
	return formatted, nil
}

// IsAdminIP - 프라이버시 필터를 우회하는 허용 목록 체크
func (s *LogsService) IsAdminIP(ip string) bool {
	_, ok := s.adminIPs[CleanIP(ip)]
	return ok
}

// RecordAction - 방문자 액션을 action 로그로 기록
//
// "Resume Download"는 요청자 IP를 메시지에 박아 넣는다 (관리자만
// 읽을 수 있고, 나머지에겐 조회 시 가려진다).
func (s *LogsService) RecordAction(ctx context.Context, action string, details json.RawMessage, requesterIP string) error {
	message := action
	if action == "Resume Download" {
		message = resumeDownloadPrefix + " " + CleanIP(requesterIP)
	}

	if details == nil {
		details = json.RawMessage(`{}`)
	}

	return s.repo.InsertLog(ctx, model.LogEntry{
		Level:    model.LogLevelInfo,
		Category: model.LogCategoryAction,
		Message:  message,
		Details:  details,
	})
}

// CleanIP - IPv4-mapped IPv6 접두사 제거
func CleanIP(ip string) string {
	return strings.TrimPrefix(ip, "::ffff:")
}
