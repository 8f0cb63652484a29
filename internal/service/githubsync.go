package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ops-console/backend/internal/model"
)

// githubAPI - GitHub 클라이언트 인터페이스 (sync 전용)
type githubAPI interface {
	IsConfigured() bool
	Username() string
	ListUserEvents(ctx context.Context, perPage int) ([]model.GitHubEvent, error)
	GetRepo(ctx context.Context, fullName string) (*model.GitHubRepo, error)
	GetCommit(ctx context.Context, fullName, ref string) (*model.GitHubCommit, error)
}

// githubSyncStore - DB 인터페이스 (sync 전용)
type githubSyncStore interface {
	HasLogWithExternalID(ctx context.Context, externalID string) (bool, error)
	InsertLog(ctx context.Context, entry model.LogEntry) error
	InsertDeployment(ctx context.Context, entry model.DeploymentEntry) error
}

// 이벤트 피드에서 한 pass에 읽는 최대 이벤트 수
const eventFeedSize = 10

// GitHubSyncService - push 이벤트를 로그/배포 기록으로 적재하는 서비스
type GitHubSyncService struct {
	api  githubAPI
	repo githubSyncStore
}

func NewGitHubSyncService(api githubAPI, repo githubSyncStore) *GitHubSyncService {
	return &GitHubSyncService{api: api, repo: repo}
}

// SyncActivity - sync pass 1회 실행
//
// 이벤트별로 dedup 후 LogEntry 1건 + DeploymentEntry 1건을 추가한다.
// 피드 조회 실패 시 pass를 종료하되 이미 적재된 행은 그대로 둔다.
// 미처리 이벤트는 external_id 매칭이 없으므로 다음 poll에서 재시도된다.
func (s *GitHubSyncService) SyncActivity(ctx context.Context) error {
	log.Printf("[GitHub] Syncing activity for %s...", s.api.Username())

	if !s.api.IsConfigured() {
		log.Printf("[GitHub] No GITHUB_TOKEN provided. Skipping sync.")
		return nil
	}

	events, err := s.api.ListUserEvents(ctx, eventFeedSize)
	if err != nil {
		log.Printf("[GitHub] Sync failed: %v", err)
		return fmt.Errorf("list user events: %w", err)
	}

	for _, event := range events {
		if event.Type != "PushEvent" {
			continue
		}

		exists, err := s.repo.HasLogWithExternalID(ctx, event.ID)
		if err != nil {
			log.Printf("[GitHub] Sync failed: %v", err)
			return fmt.Errorf("dedup check for event %s: %w", event.ID, err)
		}
		if exists {
			continue
		}

		if err := s.processPush(ctx, event); err != nil {
			log.Printf("[GitHub] Sync failed: %v", err)
			return err
		}
	}

	log.Printf("[GitHub] Sync complete. Processed %d events.", len(events))
	return nil
}

// processPush - push 이벤트 1건을 로그 + 배포 기록으로 변환
func (s *GitHubSyncService) processPush(ctx context.Context, event model.GitHubEvent) error {
	repo := event.Repo.Name
	log.Printf("[GitHub] Processing PushEvent for %s", repo)

	commitSHA, commitMsg := s.deriveCommit(ctx, event)

	timestamp := event.CreatedAt
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	logDetails, err := json.Marshal(map[string]string{
		"commit":  commitMsg,
		"eventId": event.ID,
		"url":     "https://github.com/" + repo,
	})
	if err != nil {
		return fmt.Errorf("marshal log details: %w", err)
	}

	if err := s.repo.InsertLog(ctx, model.LogEntry{
		Level:      model.LogLevelInfo,
		Category:   model.LogCategoryDeployment,
		Message:    "Pushed to " + repo,
		Details:    logDetails,
		ExternalID: event.ID,
		Timestamp:  timestamp,
	}); err != nil {
		return fmt.Errorf("insert log for event %s: %w", event.ID, err)
	}

	// 저장소 메타데이터 조회. 실패해도 이벤트를 버리지 않고 기본값으로 진행
	deployedURL := ""
	isPrivate := false
	if repoData, err := s.api.GetRepo(ctx, repo); err != nil {
		log.Printf("[GitHub] Failed to get repo details for %s: %v", repo, err)
	} else {
		isPrivate = repoData.Private
		if repoData.Homepage != "" {
			deployedURL = repoData.Homepage
		} else if repoData.HasPages {
			if owner, name, ok := strings.Cut(repo, "/"); ok {
				deployedURL = "https://" + owner + ".github.io/" + name
			}
		}
	}

	deployDetails, err := json.Marshal(model.DeploymentDetails{
		Description: commitMsg,
		GitHub:      "https://github.com/" + repo + "/commit/" + commitSHA,
		DeployedURL: deployedURL,
		Private:     isPrivate,
		Strategy:    "Continuous Deployment",
		Pipeline: []model.PipelineStage{
			{Stage: "Build", Status: "complete"},
			{Stage: "Test", Status: "complete"},
			{Stage: "Deploy", Status: "complete"},
		},
		Decisions: []string{"Auto-Deploy Triggered"},
	})
	if err != nil {
		return fmt.Errorf("marshal deployment details: %w", err)
	}

	if err := s.repo.InsertDeployment(ctx, model.DeploymentEntry{
		Project:    repo,
		Status:     "success",
		Timestamp:  timestamp,
		Details:    deployDetails,
		ExternalID: event.ID,
	}); err != nil {
		return fmt.Errorf("insert deployment for event %s: %w", event.ID, err)
	}

	return nil
}

// deriveCommit - 커밋 SHA와 메시지를 한 번만 유도
//
// SHA: 페이로드 커밋 목록의 마지막 항목 → head 포인터 → "main"
// 메시지: 마지막 커밋 메시지 → head_commit 메시지 → (비었거나 generic이면)
// 커밋/브랜치 ref 추가 조회 → 그래도 실패하면 "Update <repo>" placeholder
func (s *GitHubSyncService) deriveCommit(ctx context.Context, event model.GitHubEvent) (sha, msg string) {
	repo := event.Repo.Name
	payload := event.Payload
	placeholder := "Update " + repo

	sha = "main"
	if len(payload.Commits) > 0 {
		last := payload.Commits[len(payload.Commits)-1]
		sha = last.SHA
		msg = last.Message
	} else if payload.Head != "" {
		sha = payload.Head
	}

	if msg == "" && payload.HeadCommit != nil {
		msg = payload.HeadCommit.Message
	}

	if msg == "" || msg == placeholder {
		ref := sha
		if ref == "" || ref == "main" {
			ref = strings.TrimPrefix(payload.Ref, "refs/heads/")
			if ref == "" {
				ref = "main"
			}
		}

		log.Printf("[GitHub] Generic message found. Fetching real commit for %s @ %s", repo, ref)

		commitData, err := s.api.GetCommit(ctx, repo, ref)
		if err != nil {
			log.Printf("[GitHub] Failed to fetch commit details for %s: %v", repo, err)
			msg = placeholder
		} else {
			if commitData.Commit.Message != "" {
				msg = commitData.Commit.Message
			} else {
				msg = placeholder
			}
			if sha == "main" || sha == "" {
				sha = commitData.SHA
			}
		}
	}

	return sha, msg
}
