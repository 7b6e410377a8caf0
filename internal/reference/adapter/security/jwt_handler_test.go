package security_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"favorites-conformance/internal/reference/adapter/security"
	"favorites-conformance/internal/reference/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type JWTTestSuite struct {
	suite.Suite
	config  *config.Config
	service *security.JWTokenService
}

func (suite *JWTTestSuite) SetupTest() {
	suite.config = &config.Config{
		JWTSecret: "test-secret-key-32-characters-long-12345",
		JWTIssuer: "test-issuer",
		TokenTTL:  2 * time.Second,
	}

	service, err := security.NewJWTokenService(suite.config)
	require.NoError(suite.T(), err)
	suite.service = service
}

func (suite *JWTTestSuite) TestNewJWTokenService_Success() {
	service, err := security.NewJWTokenService(suite.config)

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), service)
}

func (suite *JWTTestSuite) TestNewJWTokenService_ValidationErrors() {
	testCases := []struct {
		name         string
		modifyConfig func(*config.Config)
		expectedErr  string
	}{
		{
			name: "empty secret key",
			modifyConfig: func(cfg *config.Config) {
				cfg.JWTSecret = ""
			},
			expectedErr: "jwt secret key cannot be empty",
		},
		{
			name: "empty issuer",
			modifyConfig: func(cfg *config.Config) {
				cfg.JWTIssuer = ""
			},
			expectedErr: "jwt issuer cannot be empty",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			cfg := *suite.config // Copy
			tc.modifyConfig(&cfg)

			service, err := security.NewJWTokenService(&cfg)

			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), service)
			assert.Contains(suite.T(), err.Error(), tc.expectedErr)
		})
	}
}

func (suite *JWTTestSuite) TestGenerateToken_Success() {
	ctx := context.Background()
	sessionID := "session-123"
	expiresAt := time.Now().Add(2 * time.Second)

	tokenString, err := suite.service.GenerateToken(ctx, sessionID, expiresAt)

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), tokenString)

	// Verify token structure
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(suite.config.JWTSecret), nil
	})
	require.NoError(suite.T(), err)
	assert.True(suite.T(), token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), sessionID, claims["sessionID"])
	assert.Equal(suite.T(), suite.config.JWTIssuer, claims["iss"])
}

func (suite *JWTTestSuite) TestValidateToken_Success() {
	ctx := context.Background()
	sessionID := "session-123"

	tokenString, err := suite.service.GenerateToken(ctx, sessionID, time.Now().Add(2*time.Second))
	require.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(ctx, tokenString)

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), claims)
	assert.Equal(suite.T(), sessionID, claims.SessionID)
	assert.Equal(suite.T(), suite.config.JWTIssuer, claims.Issuer)
}

func (suite *JWTTestSuite) TestValidateToken_InvalidSignature() {
	ctx := context.Background()

	differentConfig := *suite.config
	differentConfig.JWTSecret = "different-secret-key-32-chars-long"
	differentService, err := security.NewJWTokenService(&differentConfig)
	require.NoError(suite.T(), err)

	tokenString, err := differentService.GenerateToken(ctx, "session-123", time.Now().Add(2*time.Second))
	require.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(ctx, tokenString)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
	assert.Equal(suite.T(), security.ErrTokenSignatureInvalid, err)
}

func (suite *JWTTestSuite) TestValidateToken_PastExpiryStillVerifies() {
	// Expiry is the session store's decision, so a token whose embedded
	// claims lie in the past must still pass signature validation.
	ctx := context.Background()

	tokenString, err := suite.service.GenerateToken(ctx, "session-123", time.Now().Add(-time.Second))
	require.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(ctx, tokenString)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "session-123", claims.SessionID)
}

func (suite *JWTTestSuite) TestValidateToken_MalformedTokens() {
	ctx := context.Background()

	testCases := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"invalid format", "invalid.token.format"},
		{"malformed jwt", "header.payload"},
		{"random string", "not-a-jwt-token"},
		{"incomplete jwt", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			claims, err := suite.service.ValidateToken(ctx, tc.token)

			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), claims)
			assert.Equal(suite.T(), security.ErrTokenInvalid, err)
		})
	}
}

func (suite *JWTTestSuite) TestValidateToken_MissingSessionID() {
	ctx := context.Background()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    suite.config.JWTIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	tokenString, err := token.SignedString([]byte(suite.config.JWTSecret))
	require.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(ctx, tokenString)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
	assert.Equal(suite.T(), security.ErrTokenInvalid, err)
}

func (suite *JWTTestSuite) TestTokenLifecycle_MultipleCycles() {
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		sessionID := fmt.Sprintf("session-%d", i)

		token, err := suite.service.GenerateToken(ctx, sessionID, time.Now().Add(2*time.Second))
		require.NoError(suite.T(), err)

		claims, err := suite.service.ValidateToken(ctx, token)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), sessionID, claims.SessionID)
	}
}

func TestJWTTestSuite(t *testing.T) {
	suite.Run(t, new(JWTTestSuite))
}

func BenchmarkGenerateToken(b *testing.B) {
	cfg := &config.Config{
		JWTSecret: "test-secret-key-32-characters-long-12345",
		JWTIssuer: "test-issuer",
		TokenTTL:  2 * time.Second,
	}
	service, _ := security.NewJWTokenService(cfg)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		service.GenerateToken(ctx, "session-123", time.Now().Add(2*time.Second))
	}
}

func BenchmarkValidateToken(b *testing.B) {
	cfg := &config.Config{
		JWTSecret: "test-secret-key-32-characters-long-12345",
		JWTIssuer: "test-issuer",
		TokenTTL:  2 * time.Second,
	}
	service, _ := security.NewJWTokenService(cfg)
	ctx := context.Background()

	token, _ := service.GenerateToken(ctx, "session-123", time.Now().Add(2*time.Second))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		service.ValidateToken(ctx, token)
	}
}
