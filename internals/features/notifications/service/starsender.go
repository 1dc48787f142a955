// file: internals/features/notifications/service/starsender.go
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

// StarsenderChannel: kirim WhatsApp via Starsender API.
type StarsenderChannel struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewStarsenderChannel(apiKey string) *StarsenderChannel {
	return &StarsenderChannel{
		APIKey:  apiKey,
		BaseURL: "https://api.starsender.online/api/send",
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *StarsenderChannel) Name() model.NotificationChannel {
	return model.ChannelWhatsApp
}

func (s *StarsenderChannel) Send(ctx context.Context, to Recipient, msg Message) error {
	if s.APIKey == "" {
		return fmt.Errorf("starsender: STARSENDER_API_KEY belum diset")
	}

	payload, err := json.Marshal(map[string]string{
		"messageType": "text",
		"to":          to.Phone,
		"body":        msg.Body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("starsender: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
