package model

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Incident 모델 (장애 단위, seed/admin 전용 콘텐츠)
// ============================================================================

// Incident - incidents 테이블 한 행
type Incident struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Date      time.Time       `json:"-"`
	Impact    string          `json:"impact"`
	RootCause string          `json:"rootCause"`
	Status    string          `json:"status"` // resolved
	Learning  string          `json:"learning"`
	Timeline  json.RawMessage `json:"-"`
}

// TimelineStep - Incident timeline 항목
type TimelineStep struct {
	Time   string `json:"time"`
	Action string `json:"action"`
	Detail string `json:"detail"`
}

// IncidentResponse - 목록 조회 응답 구조체 (date는 YYYY-MM-DD)
type IncidentResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Date      string         `json:"date"`
	Impact    string         `json:"impact"`
	RootCause string         `json:"rootCause"`
	Status    string         `json:"status"`
	Learning  string         `json:"learning"`
	Timeline  []TimelineStep `json:"timeline"`
}

// CreateIncidentRequest - 관리자 Incident 생성 요청 구조체
type CreateIncidentRequest struct {
	Title     string         `json:"title" binding:"required"`
	Date      time.Time      `json:"date" binding:"required"`
	Impact    string         `json:"impact"`
	RootCause string         `json:"rootCause"`
	Status    string         `json:"status"`
	Learning  string         `json:"learning"`
	Timeline  []TimelineStep `json:"timeline"`
}

// CreateIncidentResponse - 관리자 Incident 생성 응답 구조체
type CreateIncidentResponse struct {
	Status     string `json:"status"`
	IncidentID string `json:"incident_id"`
}
