package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"eksporyuk_backend/internals/features/notifications/model"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeChannel struct {
	name  model.NotificationChannel
	err   error
	calls []Message
}

func (f *fakeChannel) Name() model.NotificationChannel { return f.name }

func (f *fakeChannel) Send(_ context.Context, _ Recipient, msg Message) error {
	f.calls = append(f.calls, msg)
	return f.err
}

func testRecipient() Recipient {
	return Recipient{
		UserID: uuid.New(),
		Name:   "Budi",
		Email:  "budi@example.com",
		Phone:  "+628123456789",
	}
}

// ==========================
// Tests
// ==========================

func TestDispatch_SendsToAllChannelsWhenNoFilter(t *testing.T) {
	email := &fakeChannel{name: model.ChannelEmail}
	wa := &fakeChannel{name: model.ChannelWhatsApp}
	push := &fakeChannel{name: model.ChannelPush}

	d := NewDispatcher(nil, email, wa, push)
	d.Dispatch(context.Background(), testRecipient(), Message{Type: "membership_activated", Subject: "Aktif!", Body: "Selamat"})

	assert.Len(t, email.calls, 1)
	assert.Len(t, wa.calls, 1)
	assert.Len(t, push.calls, 1)
}

func TestDispatch_FiltersByWantedChannels(t *testing.T) {
	email := &fakeChannel{name: model.ChannelEmail}
	wa := &fakeChannel{name: model.ChannelWhatsApp}

	d := NewDispatcher(nil, email, wa)
	d.Dispatch(context.Background(), testRecipient(), Message{Type: "membership_expired"}, model.ChannelEmail)

	assert.Len(t, email.calls, 1)
	assert.Empty(t, wa.calls)
}

func TestDispatch_ChannelFailureDoesNotStopOthers(t *testing.T) {
	email := &fakeChannel{name: model.ChannelEmail, err: errors.New("smtp down")}
	wa := &fakeChannel{name: model.ChannelWhatsApp}

	d := NewDispatcher(nil, email, wa)

	// Dispatch tidak punya return error — cukup pastikan tidak panic dan
	// channel sehat tetap kebagian.
	d.Dispatch(context.Background(), testRecipient(), Message{Type: "membership_expired"})

	assert.Len(t, email.calls, 1)
	assert.Len(t, wa.calls, 1)
}

func TestDispatch_SkipsChannelWithoutRecipient(t *testing.T) {
	email := &fakeChannel{name: model.ChannelEmail}
	wa := &fakeChannel{name: model.ChannelWhatsApp}

	to := testRecipient()
	to.Phone = "" // user tanpa nomor WA

	d := NewDispatcher(nil, email, wa)
	d.Dispatch(context.Background(), to, Message{Type: "membership_reminder"})

	assert.Len(t, email.calls, 1)
	assert.Empty(t, wa.calls)
}

func TestChannelWanted(t *testing.T) {
	assert.True(t, channelWanted(model.ChannelEmail, nil))
	assert.True(t, channelWanted(model.ChannelEmail, []model.NotificationChannel{model.ChannelEmail}))
	assert.False(t, channelWanted(model.ChannelPush, []model.NotificationChannel{model.ChannelEmail, model.ChannelWhatsApp}))
}

func TestRecipientFor(t *testing.T) {
	to := testRecipient()
	assert.Equal(t, to.Email, recipientFor(model.ChannelEmail, to))
	assert.Equal(t, to.Phone, recipientFor(model.ChannelWhatsApp, to))
	assert.Equal(t, to.UserID.String(), recipientFor(model.ChannelPush, to))

	assert.Empty(t, recipientFor(model.ChannelPush, Recipient{}))
}
