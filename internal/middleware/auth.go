package middleware

import (
  "fmt"
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/requestdata"
)

// AuthMiddleware verifies the bearer token the dashboard sends. Token
// issuance lives in the auth service; this side only checks the
// signature and lifts the tenant id into the request context.
type AuthMiddleware struct {
  log    *logger.Logger
  secret []byte
}

func NewAuthMiddleware(log *logger.Logger, secret string) *AuthMiddleware {
  middlewareLog := log.With("middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLog, secret: []byte(secret)}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString := extractToken(c)
    if tokenString == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
      return
    }
    clientID, err := am.parseClientID(tokenString)
    if err != nil {
      am.log.Debug("Token rejected", "error", err)
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
      return
    }
    ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
      TokenString: tokenString,
      ClientID:    clientID,
    })
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}

func (am *AuthMiddleware) parseClientID(tokenString string) (uuid.UUID, error) {
  token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
    }
    return am.secret, nil
  })
  if err != nil {
    return uuid.Nil, err
  }
  claims, ok := token.Claims.(jwt.MapClaims)
  if !ok || !token.Valid {
    return uuid.Nil, fmt.Errorf("invalid token claims")
  }
  sub, err := claims.GetSubject()
  if err != nil || sub == "" {
    return uuid.Nil, fmt.Errorf("token has no subject")
  }
  clientID, err := uuid.Parse(sub)
  if err != nil {
    return uuid.Nil, fmt.Errorf("token subject is not a client id")
  }
  return clientID, nil
}

func extractToken(c *gin.Context) string {
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  if qToken := c.Query("token"); qToken != "" {
    return qToken
  }
  return ""
}
