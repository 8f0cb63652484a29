package model

// ============================================================================
// Google Calendar API 페이로드 구조체
// ============================================================================

// CalendarEventTime - 이벤트 시작/종료 (종일 이벤트는 date만 채워짐)
type CalendarEventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

// CalendarEvent - events.list 항목 (필요한 필드만)
type CalendarEvent struct {
	ID      string            `json:"id"`
	Summary string            `json:"summary"`
	Start   CalendarEventTime `json:"start"`
	End     CalendarEventTime `json:"end"`
}

// CalendarEventList - GET /calendars/{id}/events 응답
type CalendarEventList struct {
	Items []CalendarEvent `json:"items"`
}
