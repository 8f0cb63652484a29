// 외부 GitHub REST API와 통신하는 클라이언트 정의
//
// 환경변수 (internal/config 경유):
//   - GITHUB_TOKEN: Personal Access Token (ghp_... / github_pat_...)
//   - GITHUB_USERNAME: 이벤트 피드를 읽을 계정
//
// 토큰 없이도 public 피드는 읽을 수 있지만 rate limit이 심해서
// 토큰이 비어 있으면 sync 쪽에서 pass 전체를 스킵한다.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ops-console/backend/internal/model"
)

// GitHubClient 구조체 정의
type GitHubClient struct {
	token      string
	username   string
	baseURL    string
	httpClient *http.Client
}

// GitHubClient 객체 생성
func NewGitHubClient(token, username, baseURL string) *GitHubClient {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &GitHubClient{
		token:    token,
		username: username,
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// 토큰이 설정되어 있는지 체크
func (c *GitHubClient) IsConfigured() bool {
	return c.token != ""
}

func (c *GitHubClient) Username() string {
	return c.username
}

// GitHub API 호출 공통 헬퍼
func (c *GitHubClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call github: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github API error: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// ListUserEvents - 계정의 최근 활동 이벤트 조회 (private 포함, 토큰 권한에 따름)
func (c *GitHubClient) ListUserEvents(ctx context.Context, perPage int) ([]model.GitHubEvent, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(perPage))

	var events []model.GitHubEvent
	if err := c.get(ctx, "/users/"+c.username+"/events", query, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetRepo - 저장소 메타데이터 조회 (visibility, homepage, pages 여부)
func (c *GitHubClient) GetRepo(ctx context.Context, fullName string) (*model.GitHubRepo, error) {
	var repo model.GitHubRepo
	if err := c.get(ctx, "/repos/"+fullName, nil, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// GetCommit - 커밋 또는 브랜치 ref로 실제 커밋 메시지 조회
func (c *GitHubClient) GetCommit(ctx context.Context, fullName, ref string) (*model.GitHubCommit, error) {
	var commit model.GitHubCommit
	if err := c.get(ctx, "/repos/"+fullName+"/commits/"+ref, nil, &commit); err != nil {
		return nil, err
	}
	return &commit, nil
}
