package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mModel "eksporyuk_backend/internals/features/memberships/membership/model"
)

func TestActivateMembership_IdempotentOnDuplicateTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	umID := uuid.New()
	p := ActivationParams{
		UserID:        uuid.New(),
		MembershipID:  uuid.New(),
		TransactionID: uuid.New(),
		Price:         250000,
		Now:           time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	}

	// Guard paling depan nemu row lama → tidak ada query lain sama sekali
	mock.ExpectQuery(`SELECT \* FROM "user_memberships"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_membership_id", "user_membership_user_id", "user_membership_transaction_id", "user_membership_status", "user_membership_is_active"}).
			AddRow(umID, p.UserID, p.TransactionID, "ACTIVE", true))

	res, err := ActivateMembership(db, p)
	require.NoError(t, err)
	assert.True(t, res.AlreadyActivated)
	assert.Equal(t, umID, res.UserMembership.UserMembershipID)
	assert.False(t, res.RoleUpgraded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateMembership_PlanNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "user_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_membership_id"}))
	mock.ExpectQuery(`SELECT \* FROM "memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_id"}))

	res, err := ActivateMembership(db, ActivationParams{
		UserID:        uuid.New(),
		MembershipID:  uuid.New(),
		TransactionID: uuid.New(),
	})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateMembership_FullFlow(t *testing.T) {
	db, mock := newMockDB(t)

	p := ActivationParams{
		UserID:        uuid.New(),
		MembershipID:  uuid.New(),
		TransactionID: uuid.New(),
		Price:         990000,
		Now:           time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	}
	newUMID := uuid.New()

	// guard kosong → lanjut
	mock.ExpectQuery(`SELECT \* FROM "user_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_membership_id"}))

	// plan ditemukan
	mock.ExpectQuery(`SELECT \* FROM "memberships"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"membership_id", "membership_name", "membership_slug", "membership_duration", "membership_price", "membership_is_active"}).
			AddRow(p.MembershipID, "Premium 1 Bulan", "premium-1-bulan", string(mModel.DurationOneMonth), int64(990000), true))

	mock.ExpectBegin()

	// upgrade role MEMBER_FREE → MEMBER_PREMIUM
	mock.ExpectExec(`UPDATE "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// deactivate langganan lama
	mock.ExpectExec(`UPDATE "user_memberships"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// insert langganan baru (RETURNING id)
	mock.ExpectQuery(`INSERT INTO "user_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_membership_id"}).AddRow(newUMID))

	// propagasi: plan tanpa mapping
	mock.ExpectQuery(`SELECT \* FROM "membership_groups"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_group_id"}))
	mock.ExpectQuery(`SELECT \* FROM "membership_courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_course_id"}))
	mock.ExpectQuery(`SELECT \* FROM "membership_products"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_product_id"}))

	mock.ExpectCommit()

	res, err := ActivateMembership(db, p)
	require.NoError(t, err)
	require.NotNil(t, res.UserMembership)

	assert.True(t, res.RoleUpgraded)
	assert.False(t, res.AlreadyActivated)
	assert.Equal(t, newUMID, res.UserMembership.UserMembershipID)
	assert.Equal(t, p.TransactionID, res.UserMembership.UserMembershipTransactionID)
	assert.True(t, res.UserMembership.UserMembershipIsActive)

	// ONE_MONTH: endDate = start + 1 bulan kalender
	require.NotNil(t, res.UserMembership.UserMembershipEndDate)
	assert.True(t, res.UserMembership.UserMembershipEndDate.Equal(p.Now.AddDate(0, 1, 0)))

	require.NotNil(t, res.Propagation)
	assert.Equal(t, 0, res.Propagation.GroupsJoined)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateMembership_RollbackOnInsertError(t *testing.T) {
	db, mock := newMockDB(t)

	p := ActivationParams{
		UserID:        uuid.New(),
		MembershipID:  uuid.New(),
		TransactionID: uuid.New(),
		Now:           time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(`SELECT \* FROM "user_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_membership_id"}))
	mock.ExpectQuery(`SELECT \* FROM "memberships"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"membership_id", "membership_name", "membership_duration", "membership_is_active"}).
			AddRow(p.MembershipID, "Premium", string(mModel.DurationLifetime), true))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "user_memberships"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "user_memberships"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	res, err := ActivateMembership(db, p)
	assert.Nil(t, res)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
