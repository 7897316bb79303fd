package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const programGuardQuery = `SELECT COUNT(*) FROM beneficiaries WHERE program_enrolled = $1`

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestDeleteProgram_BlockedByDependents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(programGuardQuery)).
		WithArgs("prog-1").
		WillReturnRows(countRows(3))

	err = DeleteProgram(db, "prog-1")
	assert.ErrorIs(t, err, ErrConflict)

	// No DELETE was issued, so the program row survives
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProgram_NoDependents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(programGuardQuery)).
		WithArgs("prog-1").
		WillReturnRows(countRows(0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM programs WHERE id = $1`)).
		WithArgs("prog-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, DeleteProgram(db, "prog-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProgram_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(programGuardQuery)).
		WithArgs("gone").
		WillReturnRows(countRows(0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM programs WHERE id = $1`)).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, DeleteProgram(db, "gone"), ErrNotFound)
}

func TestDeletePrograms_RollsBackOnConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// First id is unreferenced and deletes inside the transaction; the
	// second hits the guard, so the whole batch must roll back.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(programGuardQuery)).
		WithArgs("a").
		WillReturnRows(countRows(0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM programs WHERE id = $1`)).
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(programGuardQuery)).
		WithArgs("b").
		WillReturnRows(countRows(2))
	mock.ExpectRollback()

	err = DeletePrograms(db, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePrograms_CommitsWhenAllUnreferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for _, id := range []string{"a", "b"} {
		mock.ExpectQuery(regexp.QuoteMeta(programGuardQuery)).
			WithArgs(id).
			WillReturnRows(countRows(0))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM programs WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	assert.NoError(t, DeletePrograms(db, []string{"a", "b"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBenefit_BlockedByDependents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM beneficiaries WHERE benefit_delivered = $1`)).
		WithArgs("ben-1").
		WillReturnRows(countRows(1))

	assert.ErrorIs(t, DeleteBenefit(db, "ben-1"), ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePeople_RollsBackOnConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	guard := `SELECT COUNT(*) FROM beneficiaries WHERE person_registered = $1`
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(guard)).
		WithArgs("p1").
		WillReturnRows(countRows(0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM people WHERE id = $1`)).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(guard)).
		WithArgs("p2").
		WillReturnRows(countRows(1))
	mock.ExpectRollback()

	err = DeletePeople(db, []string{"p1", "p2"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
