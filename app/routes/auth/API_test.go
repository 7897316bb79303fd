package auth

import (
	"database/sql"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"pdao/app/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordAPI_NeverChangesThePassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	config.AppConfig = &config.Config{DB: db}

	now := time.Now()
	userRows := sqlmock.NewRows([]string{
		"id", "email", "password", "first_name", "last_name", "is_active", "created_at", "updated_at",
	}).AddRow("u1", "staff@pdao.gov.ph", "$2a$14$hash", "Maria", "Santos", true, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at`)).
		WithArgs("staff@pdao.gov.ph").
		WillReturnRows(userRows)

	app := fiber.New()
	app.Post("/api/auth/forgot-password", ForgotPasswordAPI)

	// Even a request that smuggles in a new_password must not trigger an
	// UPDATE; the endpoint only confirms the account exists.
	body := strings.NewReader(`{"email":"staff@pdao.gov.ph","new_password":"hijacked-pass"}`)
	req := httptest.NewRequest("POST", "/api/auth/forgot-password", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPasswordAPI_UnknownEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	config.AppConfig = &config.Config{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at`)).
		WithArgs("nobody@pdao.gov.ph").
		WillReturnError(sql.ErrNoRows)

	app := fiber.New()
	app.Post("/api/auth/forgot-password", ForgotPasswordAPI)

	body := strings.NewReader(`{"email":"nobody@pdao.gov.ph"}`)
	req := httptest.NewRequest("POST", "/api/auth/forgot-password", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
