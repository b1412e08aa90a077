package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/tempobook/backend/internal/config"
	"github.com/tempobook/backend/internal/handler"
	"github.com/tempobook/backend/internal/repository"
)

const (
	testJWTSecret     = "test-jwt-secret"
	testWebhookSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Environment = "test"
	cfg.Database.QueryTimeout = 5
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.Expiration = 3600
	cfg.Redis.OperationTimeout = 1
	cfg.Webhook.Secret = testWebhookSecret
	cfg.Webhook.Tolerance = 300
	cfg.Webhook.EventTTL = 60
	return cfg
}

func newTestHandler(t *testing.T) (*handler.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := testConfig()
	repo := repository.NewRepository(cfg, db)
	rdb := redis.NewClient(&redis.Options{Addr: miniredis.RunT(t).Addr()})

	h, err := handler.NewHandler(cfg, repo, rdb)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h, dbMock
}

// sessionCookie builds a cookie the session middleware accepts, signed with
// the test JWT secret.
func sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Subject:   userID,
	})
	ss, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return &http.Cookie{Name: "__tempobook_session", Value: ss}
}

var providerColumns = []string{
	"id", "name", "email", "phone", "address", "description", "website", "logo_url", "slug", "created_at",
}

// expectProviderLookup queues the user_id -> provider resolution that every
// provider-scoped route performs first.
func expectProviderLookup(dbMock sqlmock.Sqlmock, userID string, providerID string) {
	rows := sqlmock.NewRows(providerColumns).
		AddRow(providerID, "Aurora Wellness Studio", "demo@tempobook.dev", nil, nil, nil, nil, nil, "aurora-wellness", time.Now())
	dbMock.ExpectQuery(`FROM providers WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(rows)
}
