package handler_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "duration", "price", "created_at"}).
		AddRow("svc-1", "Deep Tissue Massage", "Focused pressure work.", 60, 95.0, time.Now()).
		AddRow("svc-2", "Hot Stone Therapy", nil, 90, 140.0, time.Now())
}

func TestGetServices(t *testing.T) {
	t.Parallel()

	t.Run("public lookup by provider id", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		dbMock.ExpectQuery(`FROM services WHERE provider_id = \$1`).
			WithArgs("prov-1").
			WillReturnRows(serviceRows())

		req := httptest.NewRequest(http.MethodGet, "/services?provider_id=prov-1", nil)
		rec := httptest.NewRecorder()
		h.Mux.ServeHTTP(rec, req)

		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, http.StatusOK, rec.Code)

		var res struct {
			Services []struct {
				ID         string `json:"id"`
				ProviderID string `json:"provider_id"`
			} `json:"services"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		require.Len(t, res.Services, 2)
		assert.Equal(t, "prov-1", res.Services[0].ProviderID)
	})

	t.Run("own services via session", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")
		dbMock.ExpectQuery(`FROM services WHERE provider_id = \$1`).
			WithArgs("prov-1").
			WillReturnRows(serviceRows())

		req := httptest.NewRequest(http.MethodGet, "/services", nil)
		req.AddCookie(sessionCookie(t, "user-1"))
		rec := httptest.NewRecorder()
		h.Mux.ServeHTTP(rec, req)

		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no provider id and no session", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/services", nil)
		rec := httptest.NewRecorder()
		h.Mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateService(t *testing.T) {
	t.Parallel()

	t.Run("creates a service for the session provider", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")
		dbMock.ExpectQuery(`INSERT INTO services`).
			WithArgs(sqlmock.AnyArg(), "prov-1", "Express Recovery", nil, int32(20), 35.0).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		body := `{"name":"Express Recovery","duration":20,"price":35}`
		rec := postJSON(t, h.Mux, "/services", body, sessionCookie(t, "user-1"))

		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("price of zero is still a price", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")

		// required on a *float64 means "key present", not "non-zero".
		dbMock.ExpectQuery(`INSERT INTO services`).
			WithArgs(sqlmock.AnyArg(), "prov-1", "Free Intro Call", nil, int32(15), 0.0).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		body := `{"name":"Free Intro Call","duration":15,"price":0}`
		rec := postJSON(t, h.Mux, "/services", body, sessionCookie(t, "user-1"))

		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing duration", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")

		rec := postJSON(t, h.Mux, "/services", `{"name":"Express Recovery","price":35}`, sessionCookie(t, "user-1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateService(t *testing.T) {
	t.Parallel()

	patch := func(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPatch, "/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(sessionCookie(t, "user-1"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")

		returned := sqlmock.NewRows([]string{"name", "description", "duration", "price", "created_at"}).
			AddRow("Deep Tissue Massage", "Focused pressure work.", 60, 110.0, time.Now())
		dbMock.ExpectQuery(`UPDATE services`).
			WithArgs(nil, nil, nil, 110.0, "svc-1", "prov-1").
			WillReturnRows(returned)

		rec := patch(t, h.Mux, `{"id":"svc-1","price":110}`)

		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, http.StatusOK, rec.Code)

		var res struct {
			Service struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"service"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, "Deep Tissue Massage", res.Service.Name)
		assert.Equal(t, 110.0, res.Service.Price)
	})

	t.Run("foreign service looks like a missing one", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")
		dbMock.ExpectQuery(`UPDATE services`).
			WillReturnError(sql.ErrNoRows)

		rec := patch(t, h.Mux, `{"id":"someone-elses-service","price":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("id is required", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")

		rec := patch(t, h.Mux, `{"price":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteService(t *testing.T) {
	t.Parallel()

	del := func(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodDelete, path, nil)
		req.AddCookie(sessionCookie(t, "user-1"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("deletes an owned service", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")
		dbMock.ExpectExec(`DELETE FROM services WHERE id = \$1 AND provider_id = \$2`).
			WithArgs("svc-1", "prov-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		rec := del(t, h.Mux, "/services?id=svc-1")

		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")

		rec := del(t, h.Mux, "/services")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("nothing deleted", func(t *testing.T) {
		t.Parallel()
		h, dbMock := newTestHandler(t)

		expectProviderLookup(dbMock, "user-1", "prov-1")
		dbMock.ExpectExec(`DELETE FROM services`).
			WithArgs("svc-gone", "prov-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		rec := del(t, h.Mux, "/services?id=svc-gone")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
