package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpireDueMemberships_NothingDue(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "user_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_membership_id"}))

	report, err := ExpireDueMemberships(db, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
	assert.Equal(t, 0, report.Success)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.Errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireDueMemberships_RevokesGrantedEntitlements(t *testing.T) {
	db, mock := newMockDB(t)

	umID := uuid.New()
	userID := uuid.New()
	now := time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC)
	endDate := now.AddDate(0, 0, -1)

	mock.ExpectQuery(`SELECT \* FROM "user_memberships"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_membership_id", "user_membership_user_id", "user_membership_status", "user_membership_is_active", "user_membership_end_date"}).
			AddRow(umID, userID, "ACTIVE", true, endDate))

	// flip status
	mock.ExpectExec(`UPDATE "user_memberships"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// cabut grant per relasi, hanya edge granted_via langganan ini
	mock.ExpectExec(`DELETE FROM "group_members"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "course_enrollments"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE "user_products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// dispatcher nil → tidak ada lookup user / notifikasi
	report, err := ExpireDueMemberships(db, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Success)
	assert.Equal(t, 0, report.Failed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireDueMemberships_PartialFailureReported(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC)
	okID := uuid.New()
	badID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "user_memberships"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_membership_id", "user_membership_user_id", "user_membership_status", "user_membership_is_active"}).
			AddRow(badID, userID, "ACTIVE", true).
			AddRow(okID, userID, "ACTIVE", true))

	// item pertama: flip status gagal → dihitung failed, lanjut item berikut
	mock.ExpectExec(`UPDATE "user_memberships"`).
		WillReturnError(assert.AnError)

	// item kedua jalan normal
	mock.ExpectExec(`UPDATE "user_memberships"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "group_members"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "course_enrollments"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "user_products"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	report, err := ExpireDueMemberships(db, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Success)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], badID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
