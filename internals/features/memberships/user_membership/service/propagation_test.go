package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagateEntitlements_GrantsAllMappedResources(t *testing.T) {
	db, mock := newMockDB(t)

	userID := uuid.New()
	membershipID := uuid.New()
	grantedVia := uuid.New()
	groupID := uuid.New()
	courseID := uuid.New()
	productID := uuid.New()
	productCourseID := uuid.New()
	endDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// plan → 1 group
	mock.ExpectQuery(`SELECT \* FROM "membership_groups"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_group_id", "membership_id", "group_id"}).
			AddRow(uuid.New(), membershipID, groupID))
	// belum member → insert
	mock.ExpectQuery(`SELECT \* FROM "group_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"group_member_id"}))
	mock.ExpectQuery(`INSERT INTO "group_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"group_member_id"}).AddRow(uuid.New()))

	// plan → 1 course langsung
	mock.ExpectQuery(`SELECT \* FROM "membership_courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_course_id", "membership_id", "course_id"}).
			AddRow(uuid.New(), membershipID, courseID))
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"course_enrollment_id"}))
	mock.ExpectQuery(`INSERT INTO "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"course_enrollment_id", "course_enrollment_progress"}).
			AddRow(uuid.New(), 0))

	// plan → 1 product yang membawa 1 course lagi
	mock.ExpectQuery(`SELECT \* FROM "membership_products"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_product_id", "membership_id", "product_id"}).
			AddRow(uuid.New(), membershipID, productID))
	mock.ExpectQuery(`SELECT \* FROM "user_products"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_product_id"}))
	mock.ExpectQuery(`INSERT INTO "user_products"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_product_id", "user_product_price"}).
			AddRow(uuid.New(), 0))
	mock.ExpectQuery(`SELECT \* FROM "product_courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"product_course_id", "product_id", "course_id"}).
			AddRow(uuid.New(), productID, productCourseID))
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"course_enrollment_id"}))
	mock.ExpectQuery(`INSERT INTO "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"course_enrollment_id", "course_enrollment_progress"}).
			AddRow(uuid.New(), 0))

	res, err := PropagateEntitlements(db, userID, membershipID, grantedVia, &endDate)
	require.NoError(t, err)

	// superset: semua yang dipetakan plan (langsung maupun lewat product) kebuka
	assert.Equal(t, 1, res.GroupsJoined)
	assert.Equal(t, 2, res.CoursesActivated)
	assert.Equal(t, 1, res.ProductsActivated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropagateEntitlements_ExistingGrantsUpdatedNotDuplicated(t *testing.T) {
	db, mock := newMockDB(t)

	userID := uuid.New()
	membershipID := uuid.New()
	grantedVia := uuid.New() // langganan baru (perpanjangan)
	oldGrantedVia := uuid.New()
	groupID := uuid.New()
	courseID := uuid.New()
	endDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// sudah member dari langganan lama → edge dipindah ke langganan baru,
	// TANPA insert row kedua
	mock.ExpectQuery(`SELECT \* FROM "membership_groups"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_group_id", "membership_id", "group_id"}).
			AddRow(uuid.New(), membershipID, groupID))
	mock.ExpectQuery(`SELECT \* FROM "group_members"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"group_member_id", "group_id", "user_id", "granted_via_user_membership_id"}).
			AddRow(uuid.New(), groupID, userID, oldGrantedVia))
	mock.ExpectExec(`UPDATE "group_members"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// enrollment lama: akses dinyalakan lagi lewat UPDATE — progress tidak direset
	mock.ExpectQuery(`SELECT \* FROM "membership_courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_course_id", "membership_id", "course_id"}).
			AddRow(uuid.New(), membershipID, courseID))
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"course_enrollment_id", "user_id", "course_id", "course_enrollment_progress", "has_access", "granted_via_user_membership_id"}).
			AddRow(uuid.New(), userID, courseID, 60, false, oldGrantedVia))
	mock.ExpectExec(`UPDATE "course_enrollments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT \* FROM "membership_products"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_product_id"}))

	res, err := PropagateEntitlements(db, userID, membershipID, grantedVia, &endDate)
	require.NoError(t, err)

	assert.Equal(t, 0, res.GroupsJoined) // sudah member, bukan join baru
	assert.Equal(t, 1, res.CoursesActivated)
	assert.Equal(t, 0, res.ProductsActivated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropagateEntitlements_ManualGroupGrantUntouched(t *testing.T) {
	db, mock := newMockDB(t)

	userID := uuid.New()
	membershipID := uuid.New()
	groupID := uuid.New()
	endDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// member dengan granted_via NULL (grant manual admin) → tidak ada UPDATE
	// maupun INSERT, langsung lanjut ke mapping berikutnya
	mock.ExpectQuery(`SELECT \* FROM "membership_groups"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_group_id", "membership_id", "group_id"}).
			AddRow(uuid.New(), membershipID, groupID))
	mock.ExpectQuery(`SELECT \* FROM "group_members"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"group_member_id", "group_id", "user_id", "granted_via_user_membership_id"}).
			AddRow(uuid.New(), groupID, userID, nil))

	mock.ExpectQuery(`SELECT \* FROM "membership_courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_course_id"}))
	mock.ExpectQuery(`SELECT \* FROM "membership_products"`).
		WillReturnRows(sqlmock.NewRows([]string{"membership_product_id"}))

	res, err := PropagateEntitlements(db, userID, membershipID, uuid.New(), &endDate)
	require.NoError(t, err)

	assert.Equal(t, 0, res.GroupsJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}
