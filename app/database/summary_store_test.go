package database

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"pdao/app/aggregate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryStoreBenefitByID_DanglingReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, quantity, date_received, benefactor_id`)).
		WithArgs("gone").
		WillReturnError(sql.ErrNoRows)

	store := NewSummaryStore(db)
	_, err = store.BenefitByID("gone")

	// The engine matches with errors.Is, so the sentinel must survive the
	// translation from the SQL layer.
	assert.ErrorIs(t, err, aggregate.ErrNotFound)
}

func TestSummaryStoreBenefitByID_Found(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "quantity", "date_received", "benefactor_id"}).
		AddRow("x", "Rice Pack", "5kg rice", 100, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "g1")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, quantity, date_received, benefactor_id`)).
		WithArgs("x").
		WillReturnRows(rows)

	store := NewSummaryStore(db)
	benefit, err := store.BenefitByID("x")
	require.NoError(t, err)
	assert.Equal(t, "g1", benefit.BenefactorID)
}
