package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// DefaultBaseURL is the Discord REST API root
const DefaultBaseURL = "https://discord.com/api/v10"

// ErrUnknownChannel indicates a channel name that doesn't resolve on the
// platform. Fatal when resolving the announcement channel at startup,
// recoverable when validating a set command.
var ErrUnknownChannel = errors.New("unknown channel")

// Embed is a rich paper announcement or status message
type Embed struct {
	Title       string
	Description string
	URL         string
	Timestamp   time.Time
	Color       int
	Footer      string
	Author      string
}

// Discord delivers messages to named channels over the Discord REST API.
// Channel names are resolved to ids through the guild channel listing and
// cached; an unknown name forces a single cache refresh before failing.
type Discord struct {
	client    *http.Client
	baseURL   string
	token     string
	userAgent string

	mu       sync.Mutex
	channels map[string]string // name to id
}

// NewDiscord creates a Discord notification client authenticated with the
// bot token. Empty baseURL uses the public API.
func NewDiscord(token, baseURL string, timeout time.Duration, userAgent string) *Discord {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Discord{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		token:     token,
		userAgent: userAgent,
		channels:  make(map[string]string),
	}
}

// ResolveChannel checks that the channel name maps to a real channel
func (d *Discord) ResolveChannel(ctx context.Context, name string) error {
	_, err := d.channelID(ctx, name)
	return err
}

// SendText delivers a plain message to the named channel
func (d *Discord) SendText(ctx context.Context, channel, text string) error {
	payload := map[string]interface{}{"content": text}
	return d.send(ctx, channel, payload)
}

// SendEmbed delivers a rich message to the named channel
func (d *Discord) SendEmbed(ctx context.Context, channel string, e Embed) error {
	embed := map[string]interface{}{
		"type":        "rich",
		"title":       e.Title,
		"description": e.Description,
		"url":         e.URL,
		"color":       e.Color,
	}
	if !e.Timestamp.IsZero() {
		embed["timestamp"] = e.Timestamp.UTC().Format(time.RFC3339)
	}
	if e.Footer != "" {
		embed["footer"] = map[string]string{"text": e.Footer}
	}
	if e.Author != "" {
		embed["author"] = map[string]string{"name": e.Author}
	}
	payload := map[string]interface{}{"embeds": []interface{}{embed}}
	return d.send(ctx, channel, payload)
}

// send posts the payload to the channel, retrying transient failures
func (d *Discord) send(ctx context.Context, channel string, payload map[string]interface{}) error {
	id, err := d.channelID(ctx, channel)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	retrier := repeater.NewBackoff(3, 500*time.Millisecond, repeater.WithMaxDelay(5*time.Second))
	err = retrier.Do(ctx, func() error {
		return d.post(ctx, fmt.Sprintf("%s/channels/%s/messages", d.baseURL, id), body)
	})
	if err != nil {
		return fmt.Errorf("send to channel %s: %w", channel, err)
	}
	return nil
}

func (d *Discord) post(ctx context.Context, reqURL string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	d.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// channelID resolves a channel name to its id, refreshing the cache on miss
func (d *Discord) channelID(ctx context.Context, name string) (string, error) {
	d.mu.Lock()
	id, ok := d.channels[name]
	d.mu.Unlock()
	if ok {
		return id, nil
	}

	if err := d.refreshChannels(ctx); err != nil {
		return "", fmt.Errorf("list channels: %w", err)
	}

	d.mu.Lock()
	id, ok = d.channels[name]
	d.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownChannel, name)
	}
	return id, nil
}

// refreshChannels rebuilds the name-to-id cache from all joined guilds
func (d *Discord) refreshChannels(ctx context.Context) error {
	var guilds []struct {
		ID string `json:"id"`
	}
	if err := d.getJSON(ctx, d.baseURL+"/users/@me/guilds", &guilds); err != nil {
		return fmt.Errorf("list guilds: %w", err)
	}

	channels := make(map[string]string)
	for _, g := range guilds {
		var guildChannels []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Type int    `json:"type"`
		}
		if err := d.getJSON(ctx, fmt.Sprintf("%s/guilds/%s/channels", d.baseURL, g.ID), &guildChannels); err != nil {
			return fmt.Errorf("guild %s channels: %w", g.ID, err)
		}
		for _, c := range guildChannels {
			if c.Type == 0 { // text channels only
				channels[c.Name] = c.ID
			}
		}
	}

	d.mu.Lock()
	d.channels = channels
	d.mu.Unlock()
	return nil
}

func (d *Discord) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	d.setHeaders(req)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (d *Discord) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bot "+d.token)
	req.Header.Set("User-Agent", d.userAgent)
}
