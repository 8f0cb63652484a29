package model

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Deployment 모델 (배포 단위)
// ============================================================================

// DeploymentEntry - deployments 테이블 한 행
type DeploymentEntry struct {
	ID         int64           `json:"id"`
	Project    string          `json:"project"`
	Status     string          `json:"status"` // success, running, failed
	Timestamp  time.Time       `json:"timestamp"`
	Details    json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	ExternalID string          `json:"-"`
}

// DeploymentResponse - 배포 목록 조회용 구조체
type DeploymentResponse struct {
	ID      int64           `json:"id"`
	Project string          `json:"project"`
	Status  string          `json:"status"`
	Time    time.Time       `json:"time"` // 프론트에서 "2h ago" 포맷 처리
	Details json.RawMessage `json:"details" swaggertype:"object"`
}

// PipelineStage - 배포 details 내 파이프라인 단계
type PipelineStage struct {
	Stage  string `json:"stage"`
	Status string `json:"status"`
}

// DeploymentDetails - 배포 details JSONB 구조체
type DeploymentDetails struct {
	Description string          `json:"description"`
	GitHub      string          `json:"github"`
	DeployedURL string          `json:"deployedUrl,omitempty"`
	Private     bool            `json:"private"`
	Strategy    string          `json:"strategy"`
	Pipeline    []PipelineStage `json:"pipeline"`
	Decisions   []string        `json:"decisions"`
}
