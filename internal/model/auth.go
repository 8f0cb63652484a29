package model

// AuthRequest - 관리자 로그인 요청 구조체
type AuthRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse - 액세스 토큰 응답 구조체
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AuthUser - 토큰에서 복원한 관리자 식별자
type AuthUser struct {
	LoginID string `json:"loginId"`
}
