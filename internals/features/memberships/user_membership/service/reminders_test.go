package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendExpiryReminders_OnlyOnScheduledDays(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC)
	dueID := uuid.New()
	notDueID := uuid.New()
	userID := uuid.New()

	// dua langganan di window: H-7 (kena reminder) dan H-5 (lewat jadwal)
	mock.ExpectQuery(`SELECT \* FROM "user_memberships"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_membership_id", "user_membership_user_id", "user_membership_status", "user_membership_is_active", "user_membership_end_date"}).
			AddRow(dueID, userID, "ACTIVE", true, now.AddDate(0, 0, 7)).
			AddRow(notDueID, userID, "ACTIVE", true, now.AddDate(0, 0, 5)))

	// lookup user hanya untuk yang due
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_id", "user_name", "user_email", "user_role", "user_is_active"}).
			AddRow(userID, "Budi", "budi@example.com", "MEMBER_PREMIUM", true))

	report, err := SendExpiryReminders(db, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Success)
	assert.Equal(t, 0, report.Failed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendExpiryReminders_MissingUserCountedAsFailed(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC)
	umID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "user_memberships"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_membership_id", "user_membership_user_id", "user_membership_status", "user_membership_is_active", "user_membership_end_date"}).
			AddRow(umID, uuid.New(), "ACTIVE", true, now.AddDate(0, 0, 1)))

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	report, err := SendExpiryReminders(db, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 0, report.Success)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], umID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
