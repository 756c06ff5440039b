package middleware

import (
  "net/http"
  "net/http/httptest"
  "testing"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"

  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/requestdata"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, sub string) string {
  t.Helper()
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
    "sub": sub,
    "exp": time.Now().Add(time.Hour).Unix(),
  })
  signed, err := token.SignedString([]byte(secret))
  if err != nil {
    t.Fatalf("sign token: %v", err)
  }
  return signed
}

func protectedRouter(t *testing.T) *gin.Engine {
  t.Helper()
  gin.SetMode(gin.TestMode)
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("build logger: %v", err)
  }
  am := NewAuthMiddleware(log, testSecret)

  router := gin.New()
  router.GET("/protected", am.RequireAuth(), func(c *gin.Context) {
    rd := requestdata.GetRequestData(c.Request.Context())
    if rd == nil {
      c.JSON(http.StatusInternalServerError, gin.H{"error": "no request data"})
      return
    }
    c.JSON(http.StatusOK, gin.H{"client_id": rd.ClientID.String()})
  })
  return router
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
  router := protectedRouter(t)
  clientID := uuid.New()

  req := httptest.NewRequest(http.MethodGet, "/protected", nil)
  req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, clientID.String()))
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusOK {
    t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
  }
}

func TestRequireAuthAcceptsQueryToken(t *testing.T) {
  router := protectedRouter(t)
  clientID := uuid.New()

  req := httptest.NewRequest(http.MethodGet, "/protected?token="+signToken(t, testSecret, clientID.String()), nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusOK {
    t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
  }
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
  router := protectedRouter(t)

  req := httptest.NewRequest(http.MethodGet, "/protected", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusUnauthorized {
    t.Fatalf("status = %d, want 401", rec.Code)
  }
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
  router := protectedRouter(t)

  req := httptest.NewRequest(http.MethodGet, "/protected", nil)
  req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", uuid.NewString()))
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusUnauthorized {
    t.Fatalf("status = %d, want 401", rec.Code)
  }
}

func TestRequireAuthRejectsNonUUIDSubject(t *testing.T) {
  router := protectedRouter(t)

  req := httptest.NewRequest(http.MethodGet, "/protected", nil)
  req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "not-a-uuid"))
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusUnauthorized {
    t.Fatalf("status = %d, want 401", rec.Code)
  }
}
