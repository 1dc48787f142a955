// file: internals/features/memberships/user_membership/service/duration.go
package service

import (
	"time"

	mModel "eksporyuk_backend/internals/features/memberships/membership/model"
)

// MembershipEndDate menghitung tanggal berakhir langganan dari durasi plan.
// Aritmetika kalender (tanggal-sama bulan berikutnya), bukan hitung hari:
// 15 Jan + THREE_MONTHS = 15 Apr.
//
// LIFETIME mengembalikan nil (tidak pernah kadaluarsa). Sistem lama memakai
// sentinel +100 tahun; di sini direpresentasikan sebagai NULL.
func MembershipEndDate(start time.Time, d mModel.MembershipDuration) *time.Time {
	var end time.Time
	switch d {
	case mModel.DurationOneMonth:
		end = start.AddDate(0, 1, 0)
	case mModel.DurationThreeMonths:
		end = start.AddDate(0, 3, 0)
	case mModel.DurationSixMonths:
		end = start.AddDate(0, 6, 0)
	case mModel.DurationTwelveMonths:
		end = start.AddDate(1, 0, 0)
	case mModel.DurationLifetime:
		return nil
	default:
		// durasi tak dikenal: fallback paling pendek
		end = start.AddDate(0, 1, 0)
	}
	return &end
}
