// file: internals/features/notifications/service/onesignal.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"eksporyuk_backend/internals/features/notifications/model"
)

// OneSignalChannel: push notification via OneSignal REST API, target
// berdasarkan external user id (= user_id kita).
type OneSignalChannel struct {
	AppID   string
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewOneSignalChannel(appID, apiKey string) *OneSignalChannel {
	return &OneSignalChannel{
		AppID:   appID,
		APIKey:  apiKey,
		BaseURL: "https://onesignal.com/api/v1/notifications",
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (o *OneSignalChannel) Name() model.NotificationChannel {
	return model.ChannelPush
}

func (o *OneSignalChannel) Send(ctx context.Context, to Recipient, msg Message) error {
	if o.AppID == "" || o.APIKey == "" {
		return fmt.Errorf("onesignal: ONESIGNAL_APP_ID / ONESIGNAL_API_KEY belum diset")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"app_id":                    o.AppID,
		"include_external_user_ids": []string{to.UserID.String()},
		"headings":                  map[string]string{"en": msg.Subject},
		"contents":                  map[string]string{"en": msg.Body},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+o.APIKey)

	resp, err := o.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("onesignal: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
