// 외부 Google Calendar API와 통신하는 클라이언트 정의
//
// 서비스 계정(JWT) 기반 읽기 전용 접근. 자격 증명 해석은
// credentials.go의 ResolveServiceAccount가 담당한다.

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

const calendarReadonlyScope = "https://www.googleapis.com/auth/calendar.readonly"

// CalendarClient 구조체 정의
type CalendarClient struct {
	calendarID string
	baseURL    string
	httpClient *http.Client
}

// EventQuery - events.list 조회 조건
type EventQuery struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int
	Search     string // q 파라미터 (예: "Goal:")
}

// NewCalendarClient - 자격 증명을 해석해서 인증된 클라이언트 생성
//
// 자격 증명이 없거나 깨져 있으면 typed error를 그대로 올린다.
// graceful skip 여부는 호출부(main/sync)가 결정한다.
func NewCalendarClient(ctx context.Context, calendarID, credentialsJSON, keyFile, baseURL string) (*CalendarClient, error) {
	saCfg, err := ResolveServiceAccount(credentialsJSON, keyFile, calendarReadonlyScope)
	if err != nil {
		return nil, err
	}

	httpClient := saCfg.Client(ctx)
	httpClient.Timeout = 10 * time.Second

	return newCalendarClientWithHTTP(httpClient, calendarID, baseURL), nil
}

// 테스트에서 httptest 서버를 붙이기 위한 내부 생성자
func newCalendarClientWithHTTP(httpClient *http.Client, calendarID, baseURL string) *CalendarClient {
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/calendar/v3"
	}
	return &CalendarClient{
		calendarID: calendarID,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListEvents - 단건 확장(singleEvents) + 시작 시간순으로 이벤트 조회
func (c *CalendarClient) ListEvents(ctx context.Context, q EventQuery) ([]model.CalendarEvent, error) {
	query := url.Values{}
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")
	if !q.TimeMin.IsZero() {
		query.Set("timeMin", q.TimeMin.Format(time.RFC3339))
	}
	if !q.TimeMax.IsZero() {
		query.Set("timeMax", q.TimeMax.Format(time.RFC3339))
	}
	if q.MaxResults > 0 {
		query.Set("maxResults", strconv.Itoa(q.MaxResults))
	}
	if q.Search != "" {
		query.Set("q", q.Search)
	}

	endpoint := c.baseURL + "/calendars/" + url.PathEscape(c.calendarID) + "/events?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call calendar API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API error: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
	}

	var list model.CalendarEventList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return list.Items, nil
}
