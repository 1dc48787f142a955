package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mModel "eksporyuk_backend/internals/features/memberships/membership/model"
)

func TestMembershipEndDate(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration mModel.MembershipDuration
		want     time.Time
	}{
		{
			name:     "one month keeps day of month",
			duration: mModel.DurationOneMonth,
			want:     time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			// aritmetika kalender, bukan 90 hari
			name:     "three months from jan 15 is apr 15",
			duration: mModel.DurationThreeMonths,
			want:     time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "six months",
			duration: mModel.DurationSixMonths,
			want:     time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "twelve months is plus one year",
			duration: mModel.DurationTwelveMonths,
			want:     time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "unknown duration falls back to one month",
			duration: mModel.MembershipDuration("WEIRD"),
			want:     time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MembershipEndDate(start, tt.duration)
			require.NotNil(t, got)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestMembershipEndDate_LifetimeIsNil(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.Nil(t, MembershipEndDate(start, mModel.DurationLifetime))
}

func TestReminderDue(t *testing.T) {
	assert.True(t, reminderDue(7))
	assert.True(t, reminderDue(3))
	assert.True(t, reminderDue(1))
	assert.False(t, reminderDue(5))
	assert.False(t, reminderDue(0))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, daysUntil(now, now.AddDate(0, 0, 7)))
	assert.Equal(t, 2, daysUntil(now, now.Add(71*time.Hour)))
}
