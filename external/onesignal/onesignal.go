package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const defaultEndpoint = "https://onesignal.com/api/v1"

// NotificationRequest is a request for sending a notification via onesignal
type NotificationRequest struct {
	AppID            string                 `json:"app_id"`
	TemplateID       string                 `json:"template_id,omitempty"`
	Headings         map[string]string      `json:"headings,omitempty"`
	Contents         map[string]string      `json:"contents,omitempty"`
	Filters          []map[string]string    `json:"filters,omitempty"`
	IncludedSegments []string               `json:"included_segments,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"`
	LocalChannelID   string                 `json:"android_channel_id,omitempty"`
}

type OneSignalClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(client *http.Client) *OneSignalClient {
	endpoint := viper.GetString("onesignal.endpoint")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &OneSignalClient{
		endpoint: endpoint,
		apiKey:   viper.GetString("onesignal.key"),
		client:   client,
	}
}

// SendNotification submits one notification request to onesignal
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", c.endpoint+"/notifications", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		d, _ := ioutil.ReadAll(resp.Body)
		log.WithFields(log.Fields{
			"prefix": "onesignal",
			"status": resp.StatusCode,
			"body":   string(d),
		}).Error("fail to send notification")
		return fmt.Errorf("onesignal responds with status %d", resp.StatusCode)
	}

	return nil
}
