package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrMissingToken is returned when the Authorization header is absent or malformed
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken is returned when the token fails validation
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the bearer token claims issued by the identity layer
type Claims struct {
	WorkspaceID string `json:"workspace_id"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticator validates HS256 bearer tokens
type Authenticator struct {
	secret []byte
	leeway time.Duration
}

// NewAuthenticator creates an Authenticator for the given shared secret
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret), leeway: time.Minute}
}

// ParseToken validates the token and returns its claims
func (a *Authenticator) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(a.leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.WorkspaceID); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IssueToken signs a token for a workspace member. Used by local tooling and tests.
func (a *Authenticator) IssueToken(workspaceID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		WorkspaceID: workspaceID.String(),
		Email:       email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func bearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// workspace and email claims on the Gin context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Error: "No authentication provided",
				Code:  "unauthorized",
			})
			return
		}

		claims, err := a.ParseToken(tokenString)
		if err != nil {
			LogWithCorrelationID(c.Request.Context()).Debug("Token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  "unauthorized",
			})
			return
		}

		c.Set(constants.WorkspaceIDKey, claims.WorkspaceID)
		c.Set(constants.UserEmailKey, claims.Email)
		if claims.Subject != "" {
			c.Set(constants.UserIDKey, claims.Subject)
		}
		c.Next()
	}
}
