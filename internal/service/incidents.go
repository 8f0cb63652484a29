package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/ops-console/backend/internal/model"
)

// incidentStore - DB 인터페이스 (incident 전용)
type incidentStore interface {
	GetIncidents(ctx context.Context) ([]model.Incident, error)
	CreateIncident(ctx context.Context, incident model.Incident) error
}

// IncidentsService - incident 목록 조회 및 관리자 생성
type IncidentsService struct {
	repo incidentStore
}

func NewIncidentsService(repo incidentStore) *IncidentsService {
	return &IncidentsService{repo: repo}
}

// GetIncidents - 최신순 목록, timeline 파싱 포함
func (s *IncidentsService) GetIncidents(ctx context.Context) ([]model.IncidentResponse, error) {
	incidents, err := s.repo.GetIncidents(ctx)
	if err != nil {
		return nil, err
	}

	formatted := make([]model.IncidentResponse, 0, len(incidents))
	for _, i := range incidents {
		timeline := []model.TimelineStep{}
		if len(i.Timeline) > 0 {
			if err := json.Unmarshal(i.Timeline, &timeline); err != nil {
				return nil, fmt.Errorf("parse timeline for incident %s: %w", i.ID, err)
			}
		}

		formatted = append(formatted, model.IncidentResponse{
			ID:        i.ID,
			Title:     i.Title,
			Date:      i.Date.Format("2006-01-02"),
			Impact:    i.Impact,
			RootCause: i.RootCause,
			Status:    i.Status,
			Learning:  i.Learning,
			Timeline:  timeline,
		})
	}
	return formatted, nil
}

// CreateIncident - 관리자/seed 경로로만 호출되는 수동 콘텐츠 생성
func (s *IncidentsService) CreateIncident(ctx context.Context, req model.CreateIncidentRequest) (string, error) {
	status := req.Status
	if status == "" {
		status = "resolved"
	}

	timeline := req.Timeline
	if timeline == nil {
		timeline = []model.TimelineStep{}
	}
	timelineJSON, err := json.Marshal(timeline)
	if err != nil {
		return "", fmt.Errorf("marshal timeline: %w", err)
	}

	id := "INC-" + uuid.NewString()

	if err := s.repo.CreateIncident(ctx, model.Incident{
		ID:        id,
		Title:     req.Title,
		Date:      req.Date,
		Impact:    req.Impact,
		RootCause: req.RootCause,
		Status:    status,
		Learning:  req.Learning,
		Timeline:  timelineJSON,
	}); err != nil {
		return "", err
	}

	return id, nil
}
