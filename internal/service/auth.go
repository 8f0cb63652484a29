package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ops-console/backend/internal/config"
	"github.com/ops-console/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrMisconfigured = errors.New("auth config invalid")
)

// AuthService - 단일 관리자 계정용 JWT 발급/검증
//
// 사용자 테이블 없이 관리자 1명을 환경변수로 받는다. 비밀번호는
// 부팅 시 bcrypt로 해시해서 평문을 들고 있지 않는다.
type AuthService struct {
	adminID      string
	passwordHash []byte
	jwtSecret    []byte
	accessTTL    time.Duration
}

type authClaims struct {
	LoginID string `json:"loginId"`
	jwt.RegisteredClaims
}

func NewAuthService(cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}
	if strings.TrimSpace(cfg.AdminID) == "" || strings.TrimSpace(cfg.AdminPassword) == "" {
		return nil, fmt.Errorf("%w: ADMIN_USERNAME/ADMIN_PASSWORD are required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.JWTAccessTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		adminID:      cfg.AdminID,
		passwordHash: hash,
		jwtSecret:    []byte(cfg.JWTSecret),
		accessTTL:    accessTTL,
	}, nil
}

// Login - 관리자 자격 확인 후 액세스 토큰 발급
func (s *AuthService) Login(loginID, password string) (string, int64, error) {
	if strings.TrimSpace(loginID) == "" || strings.TrimSpace(password) == "" {
		return "", 0, ErrInvalidInput
	}

	if loginID != s.adminID {
		return "", 0, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", 0, ErrUnauthorized
	}

	now := time.Now()
	claims := authClaims{
		LoginID: s.adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.accessTTL.Seconds()), nil
}

// ParseAccessToken - 토큰 검증 후 관리자 식별자 복원
func (s *AuthService) ParseAccessToken(tokenStr string) (*model.AuthUser, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	if claims.LoginID != s.adminID {
		return nil, ErrUnauthorized
	}

	return &model.AuthUser{LoginID: claims.LoginID}, nil
}
