package service

import (
	"context"
	"encoding/json"

	"github.com/ops-console/backend/internal/model"
)

// deploymentStore - DB 인터페이스 (배포 목록 전용)
type deploymentStore interface {
	GetDeployments(ctx context.Context) ([]model.DeploymentEntry, error)
}

// DeploymentsService - 배포 목록 조회
type DeploymentsService struct {
	repo deploymentStore
}

func NewDeploymentsService(repo deploymentStore) *DeploymentsService {
	return &DeploymentsService{repo: repo}
}

// GetDeployments - 최신순 목록, details는 파싱된 JSON 그대로 전달
func (s *DeploymentsService) GetDeployments(ctx context.Context) ([]model.DeploymentResponse, error) {
	deployments, err := s.repo.GetDeployments(ctx)
	if err != nil {
		return nil, err
	}

	formatted := make([]model.DeploymentResponse, 0, len(deployments))
	for _, d := range deployments {
		details := d.Details
		if details == nil {
			details = json.RawMessage(`{}`)
		}
		formatted = append(formatted, model.DeploymentResponse{
			ID:      d.ID,
			Project: d.Project,
			Status:  d.Status,
			Time:    d.Timestamp,
			Details: details,
		})
	}
	return formatted, nil
}
