package client

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

var (
	// ErrCredentialsNotFound - 환경변수도 키 파일도 없음 (sync는 조용히 스킵)
	ErrCredentialsNotFound = errors.New("service account credentials not found")
	// ErrCredentialsInvalid - 자격 증명이 있긴 한데 파싱 불가
	ErrCredentialsInvalid = errors.New("service account credentials invalid")
)

// ResolveServiceAccount - 서비스 계정 자격 증명 해석
//
// 우선순위:
//  1. GOOGLE_SERVICE_ACCOUNT_JSON 환경변수 (배포 환경)
//  2. 로컬 키 파일 (로컬 개발)
//
// 어느 쪽도 없으면 ErrCredentialsNotFound, 내용이 깨져 있으면
// ErrCredentialsInvalid를 반환한다. 호출부는 인라인 분기 대신
// errors.Is로 구분한다.
func ResolveServiceAccount(credentialsJSON, keyFile string, scopes ...string) (*jwt.Config, error) {
	data := []byte(credentialsJSON)

	if len(data) == 0 {
		if keyFile == "" {
			return nil, ErrCredentialsNotFound
		}
		fileData, err := os.ReadFile(keyFile)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrCredentialsNotFound, keyFile)
			}
			return nil, fmt.Errorf("%w: %v", ErrCredentialsInvalid, err)
		}
		data = fileData
	}

	cfg, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentialsInvalid, err)
	}
	return cfg, nil
}
