package model

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Log 모델 (이벤트 로그 단위)
// ============================================================================

// 로그 레벨
const (
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// 로그 카테고리
const (
	LogCategorySystem     = "system"
	LogCategoryLearning   = "learning"
	LogCategoryDeployment = "deployment"
	LogCategoryAction     = "action" // 예: Resume Download
)

// LogEntry - logs 테이블 한 행
type LogEntry struct {
	ID         int64           `json:"id"`
	Level      string          `json:"level"`
	Category   string          `json:"category"`
	Message    string          `json:"message"`
	Details    json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	ExternalID string          `json:"-"` // 외부 이벤트 dedup 키 (없으면 빈 문자열)
	Timestamp  time.Time       `json:"timestamp"`
}

// LogResponse - 로그 조회 응답 구조체 (프론트는 level 대신 severity를 사용)
type LogResponse struct {
	ID        int64           `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Category  string          `json:"category"`
	Severity  string          `json:"severity"`
	Message   string          `json:"message"`
	Details   json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}

// LogFilter - 로그 조회 필터 (빈 값은 조건 없음)
type LogFilter struct {
	Category string
	Level    string
	Limit    int
}

// ActionRequest - POST /api/action 요청 구조체
type ActionRequest struct {
	Action  string          `json:"action" binding:"required"`
	Details json.RawMessage `json:"details" swaggertype:"object"`
}

// ActionResponse - POST /api/action 응답 구조체
type ActionResponse struct {
	Success bool `json:"success"`
}
