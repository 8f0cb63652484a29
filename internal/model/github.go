package model

import "time"

// ============================================================================
// GitHub Events API 페이로드 구조체
// ============================================================================

// GitHubEvent - GET /users/{username}/events 항목
type GitHubEvent struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"` // PushEvent만 처리
	Repo      GitHubEventRepo   `json:"repo"`
	Payload   GitHubPushPayload `json:"payload"`
	CreatedAt time.Time         `json:"created_at"`
}

// GitHubEventRepo - 이벤트의 저장소 참조 (name은 "owner/repo" 전체 이름)
type GitHubEventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GitHubPushPayload - PushEvent 페이로드
type GitHubPushPayload struct {
	Ref        string             `json:"ref"` // refs/heads/main
	Head       string             `json:"head"`
	Before     string             `json:"before"`
	Commits    []GitHubPushCommit `json:"commits"`
	HeadCommit *GitHubPushCommit  `json:"head_commit"`
}

// GitHubPushCommit - push 페이로드 내 커밋 요약
type GitHubPushCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// GitHubRepo - GET /repos/{owner}/{repo} 응답 (필요한 필드만)
type GitHubRepo struct {
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
	Homepage string `json:"homepage"`
	HasPages bool   `json:"has_pages"`
}

// GitHubCommit - GET /repos/{owner}/{repo}/commits/{ref} 응답 (필요한 필드만)
type GitHubCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
	} `json:"commit"`
}
