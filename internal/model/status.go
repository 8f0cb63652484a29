package model

import "time"

// ============================================================================
// Status 모델 (/api/status 스냅샷)
// ============================================================================

// CurrentRole - 현재 역할 정보 (Config Store 기반)
type CurrentRole struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	URL     string `json:"url"`
	Status  string `json:"status"`
}

// SystemHealth - 인프라 상태 요약
type SystemHealth struct {
	Infra          string `json:"infra"` // "Healthy" 또는 degraded 진단 문자열
	Visitors       int64  `json:"visitors"`
	LastDeployment string `json:"lastDeployment"` // "45m ago", "3h ago", "2d ago", "Never"
	Region         string `json:"region"`
}

// Metrics24h - 최근 24시간 집계
type Metrics24h struct {
	Deployments int64 `json:"deployments"`
	Activity    int64 `json:"activity"`
	Errors      int64 `json:"errors"` // error + warn 레벨 로그 수
}

// SystemStatus - GET /api/status 응답 구조체
type SystemStatus struct {
	LearningToday string       `json:"learningToday"`
	YearGoal      string       `json:"yearGoal"`
	ResumeURL     string       `json:"resumeUrl"`
	CurrentRole   CurrentRole  `json:"currentRole"`
	SystemHealth  SystemHealth `json:"systemHealth"`
	Metrics24h    Metrics24h   `json:"metrics24h"`
	LastUpdate    time.Time    `json:"lastUpdate"`
}

// Visitor - visitors 테이블 한 행
type Visitor struct {
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	FirstSeen time.Time `json:"firstSeen"`
}

// ProfilePhoto - profile_photos 테이블 한 행
type ProfilePhoto struct {
	ID         int64
	ImageData  []byte
	MimeType   string
	UploadedAt time.Time
}
