// file: internals/features/notifications/service/mailketing.go
package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eksporyuk_backend/internals/features/notifications/model"
)

// MailketingChannel: kirim email via Mailketing API (tidak ada SDK Go resmi,
// jadi dipanggil langsung lewat HTTP form seperti di web app lama).
type MailketingChannel struct {
	APIToken  string
	FromName  string
	FromEmail string
	BaseURL   string
	Client    *http.Client
}

func NewMailketingChannel(apiToken, fromName, fromEmail string) *MailketingChannel {
	return &MailketingChannel{
		APIToken:  apiToken,
		FromName:  fromName,
		FromEmail: fromEmail,
		BaseURL:   "https://app.mailketing.co.id/api/v1/send",
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *MailketingChannel) Name() model.NotificationChannel {
	return model.ChannelEmail
}

func (m *MailketingChannel) Send(ctx context.Context, to Recipient, msg Message) error {
	if m.APIToken == "" {
		return fmt.Errorf("mailketing: MAILKETING_API_TOKEN belum diset")
	}

	form := url.Values{}
	form.Set("api_token", m.APIToken)
	form.Set("from_name", m.FromName)
	form.Set("from_email", m.FromEmail)
	form.Set("recipient", to.Email)
	form.Set("subject", msg.Subject)
	form.Set("content", msg.Body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailketing: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
