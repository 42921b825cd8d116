package credential

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	autherrors "go-hms/internal/auth/errors"
	"go-hms/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// Claims is the full identity carried by both token kinds.
type Claims struct {
	UserID       int64     `json:"user_id"`
	UserUUID     uuid.UUID `json:"user_uuid"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeUUID uuid.UUID `json:"employee_uuid"`
	RoleID       int64     `json:"role_id"`
	RoleName     string    `json:"role_name"`
	CompanyID    int64     `json:"company_id"`
	CompanyName  string    `json:"company_name"`
	BranchID     *int64    `json:"branch_id,omitempty"`
	BranchName   string    `json:"branch_name,omitempty"`
	IsDoctor     bool      `json:"is_doctor"`
	Kind         TokenKind `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() contextutil.Identity {
	return contextutil.Identity{
		UserID:       c.UserID,
		UserUUID:     c.UserUUID,
		Email:        c.Email,
		Username:     c.Username,
		EmployeeID:   c.EmployeeID,
		EmployeeUUID: c.EmployeeUUID,
		RoleID:       c.RoleID,
		RoleName:     c.RoleName,
		CompanyID:    c.CompanyID,
		CompanyName:  c.CompanyName,
		BranchID:     c.BranchID,
		BranchName:   c.BranchName,
		IsDoctor:     c.IsDoctor,
	}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // access token expiry
}

type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
	Audience      string
}

//go:generate mockgen -destination=mock/token_mock.go -package=mock . TokenIssuer,TokenVerifier
type TokenIssuer interface {
	Issue(id contextutil.Identity, kind TokenKind) (string, time.Time, error)
	IssuePair(id contextutil.Identity) (TokenPair, error)
}

type TokenVerifier interface {
	Verify(token string, kind TokenKind) (*Claims, error)
}

type TokenManager struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenManager(cfg TokenConfig) *TokenManager {
	return &TokenManager{cfg: cfg, now: time.Now}
}

func (m *TokenManager) secret(kind TokenKind) ([]byte, time.Duration, error) {
	switch kind {
	case AccessToken:
		return []byte(m.cfg.AccessSecret), m.cfg.AccessTTL, nil
	case RefreshToken:
		return []byte(m.cfg.RefreshSecret), m.cfg.RefreshTTL, nil
	default:
		return nil, 0, fmt.Errorf("unknown token kind %q", kind)
	}
}

func (m *TokenManager) Issue(id contextutil.Identity, kind TokenKind) (string, time.Time, error) {
	secret, ttl, err := m.secret(kind)
	if err != nil {
		return "", time.Time{}, err
	}

	now := m.now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		UserID:       id.UserID,
		UserUUID:     id.UserUUID,
		Email:        id.Email,
		Username:     id.Username,
		EmployeeID:   id.EmployeeID,
		EmployeeUUID: id.EmployeeUUID,
		RoleID:       id.RoleID,
		RoleName:     id.RoleName,
		CompanyID:    id.CompanyID,
		CompanyName:  id.CompanyName,
		BranchID:     id.BranchID,
		BranchName:   id.BranchName,
		IsDoctor:     id.IsDoctor,
		Kind:         kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(id.UserID, 10),
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// IssuePair mints a fresh access and refresh token for id.
func (m *TokenManager) IssuePair(id contextutil.Identity) (TokenPair, error) {
	access, expiresAt, err := m.Issue(id, AccessToken)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, _, err := m.Issue(id, RefreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

// Verify checks signature, issuer, audience, expiry and kind.
// Expiry maps to ErrTokenExpired, every other failure to ErrInvalidToken.
func (m *TokenManager) Verify(token string, kind TokenKind) (*Claims, error) {
	secret, _, err := m.secret(kind)
	if err != nil {
		return nil, autherrors.ErrInvalidToken.WithErr(err)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	},
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(m.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired.WithErr(err)
		}
		return nil, autherrors.ErrInvalidToken.WithErr(err)
	}
	if !parsed.Valid || claims.Kind != kind || claims.UserID == 0 {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

// ExtractBearer accepts only "Bearer <token>".
func ExtractBearer(header string) (string, error) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", autherrors.ErrNoToken
	}
	return strings.TrimSpace(token), nil
}
