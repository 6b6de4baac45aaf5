package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/security"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrBadCredentials = errors.New("bad credentials")
	ErrInvalidToken   = errors.New("invalid token")
)

// CredentialsLoader 按登录名或 ID 加载凭据
type CredentialsLoader interface {
	LoadUserByLogin(ctx context.Context, login string) (*security.Credentials, error)
	LoadUserByID(ctx context.Context, id uint) (*security.Credentials, error)
}

// AuthService 登录校验与会话令牌
type AuthService struct {
	users      CredentialsLoader
	hasher     *BcryptHasher
	secret     []byte
	expireDays int
}

// sessionClaims 会话令牌载荷
type sessionClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewAuthService(users CredentialsLoader, hasher *BcryptHasher, secret string, expireDays int) (*AuthService, error) {
	if users == nil {
		panic("CredentialsLoader cannot be nil for AuthService")
	}
	if secret == "" {
		return nil, errors.New("session secret cannot be empty")
	}
	if expireDays <= 0 {
		expireDays = 7
	}
	return &AuthService{
		users:      users,
		hasher:     hasher,
		secret:     []byte(secret),
		expireDays: expireDays,
	}, nil
}

// ExpireDays 会话有效天数
func (s *AuthService) ExpireDays() int {
	return s.expireDays
}

// Authenticate 校验登录名和密码
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*security.Credentials, error) {
	cred, err := s.users.LoadUserByLogin(ctx, login)
	if err != nil {
		logger.Debugf("[Auth] 用户 %s 加载失败: %v", login, err)
		return nil, ErrBadCredentials
	}
	if !s.hasher.Compare(cred.Password, password) {
		return nil, ErrBadCredentials
	}
	return cred, nil
}

// GenerateToken 为凭据签发会话令牌
func (s *AuthService) GenerateToken(cred *security.Credentials) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: cred.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cred.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expireDays) * 24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// ParseToken 校验令牌并返回其中的用户 ID
func (s *AuthService) ParseToken(tokenStr string) (uint, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// Resolve 按令牌中的用户 ID 重新加载当前用户，角色和登录名变化即时生效；
// 用户被删除后即使同名账号重新注册，旧令牌也不再有效
func (s *AuthService) Resolve(ctx context.Context, tokenStr string) (*security.Principal, error) {
	id, err := s.ParseToken(tokenStr)
	if err != nil {
		return nil, err
	}
	cred, err := s.users.LoadUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cred.ID != id {
		return nil, ErrInvalidToken
	}
	return security.NewPrincipal(cred), nil
}
