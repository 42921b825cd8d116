package credential

import (
	"errors"
	"testing"
	"time"

	autherrors "go-hms/internal/auth/errors"
	"go-hms/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() TokenConfig {
	return TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "hms-api",
		Audience:      "hms-client",
	}
}

func testIdentity() contextutil.Identity {
	branch := int64(9)
	return contextutil.Identity{
		UserID:       42,
		UserUUID:     uuid.New(),
		Email:        "newuser@test.com",
		Username:     "newuser",
		EmployeeID:   7,
		EmployeeUUID: uuid.New(),
		RoleID:       1,
		RoleName:     "Administrator",
		CompanyID:    3,
		CompanyName:  "New User Company",
		BranchID:     &branch,
		BranchName:   "Default Branch",
		IsDoctor:     true,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testConfig())
	id := testIdentity()

	token, expiresAt, err := m.Issue(id, AccessToken)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := m.Verify(token, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, claims.Identity())
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "hms-api", claims.Issuer)
}

func TestTokenManager_KindsAreNotInterchangeable(t *testing.T) {
	m := NewTokenManager(testConfig())
	pair, err := m.IssuePair(testIdentity())
	require.NoError(t, err)

	_, err = m.Verify(pair.AccessToken, RefreshToken)
	assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))

	_, err = m.Verify(pair.RefreshToken, AccessToken)
	assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))

	_, err = m.Verify(pair.RefreshToken, RefreshToken)
	assert.NoError(t, err)
}

func TestTokenManager_KindClaimChecked(t *testing.T) {
	cfg := testConfig()
	cfg.RefreshSecret = cfg.AccessSecret
	m := NewTokenManager(cfg)

	token, _, err := m.Issue(testIdentity(), AccessToken)
	require.NoError(t, err)

	_, err = m.Verify(token, RefreshToken)
	assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager(testConfig())
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := m.Issue(testIdentity(), AccessToken)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token, AccessToken)
	assert.True(t, errors.Is(err, autherrors.ErrTokenExpired))
}

func TestTokenManager_IssuerAndAudienceMismatch(t *testing.T) {
	issuer := NewTokenManager(testConfig())
	token, _, err := issuer.Issue(testIdentity(), AccessToken)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Issuer = "someone-else"
	_, err = NewTokenManager(cfg).Verify(token, AccessToken)
	assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))

	cfg = testConfig()
	cfg.Audience = "another-client"
	_, err = NewTokenManager(cfg).Verify(token, AccessToken)
	assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))
}

func TestTokenManager_Malformed(t *testing.T) {
	_, err := NewTokenManager(testConfig()).Verify("not.a.jwt", AccessToken)
	assert.True(t, errors.Is(err, autherrors.ErrInvalidToken))
}

func TestExtractBearer(t *testing.T) {
	token, err := ExtractBearer("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "abc.def.ghi", "Basic Zm9vOmJhcg==", "Bearer ", "bearer abc"} {
		_, err := ExtractBearer(header)
		assert.True(t, errors.Is(err, autherrors.ErrNoToken), header)
	}
}
