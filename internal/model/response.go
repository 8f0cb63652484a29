package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ConfigUpdateRequest struct {
	Value string `json:"value" binding:"required"`
}

type ConfigUpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
}

type PhotoUploadResponse struct {
	Status string `json:"status"`
	Bytes  int    `json:"bytes"`
}

// SyncResponse - GET /api/sync 응답 구조체 (소스별 결과 포함)
type SyncResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
