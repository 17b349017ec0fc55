package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"

	"campusmatch_client/models"
)

// ErrUnauthorized is returned when the server answers 401. Session
// recovery (redirect to login) is the router's job, not the caller's;
// it hooks in via OnUnauthorized.
var ErrUnauthorized = errors.New("unauthorized")

// Client is the thin HTTP wrapper the swipe engine and chat poller talk
// through. It holds session cookies and knows the API routes, nothing
// more.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	// OnUnauthorized fires once per 401 response before ErrUnauthorized
	// is returned.
	OnUnauthorized func()
}

// New builds a Client with a cookie jar so the session survives across
// calls, matching the browser's credentials-include behavior.
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Jar: jar},
	}
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return nil, ErrUnauthorized
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetMe returns the authenticated user's own profile.
func (c *Client) GetMe(ctx context.Context) (models.Candidate, error) {
	var me models.Candidate
	if err := c.getJSON(ctx, "/user/me", &me); err != nil {
		return models.Candidate{}, err
	}
	return me, nil
}

// GetCompatibleProfiles fetches the feed queue contents, in the
// server's compatibility order.
func (c *Client) GetCompatibleProfiles(ctx context.Context) ([]models.Candidate, error) {
	var profiles []models.Candidate
	if err := c.getJSON(ctx, "/profiles/compatible", &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// SubmitLike records a like or pass and returns the raw status code.
// 201 means mutual interest; any other 2xx means recorded, non-mutual.
// The caller branches on the status, not the body.
func (c *Client) SubmitLike(ctx context.Context, likedID string, isLike bool) (int, error) {
	body, err := json.Marshal(models.Decision{LikedID: likedID, IsLike: isLike})
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/like", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// GetMatches lists confirmed mutual matches.
func (c *Client) GetMatches(ctx context.Context) ([]models.MatchEntry, error) {
	var matches []models.MatchEntry
	if err := c.getJSON(ctx, "/matches", &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// GetMessages fetches the conversation with one counterpart, oldest
// first.
func (c *Client) GetMessages(ctx context.Context, counterpartID string) ([]models.Message, error) {
	var messages []models.Message
	if err := c.getJSON(ctx, "/messages/"+counterpartID, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage posts a message with an optional image attachment as
// multipart form data and returns the created message.
func (c *Client) SendMessage(ctx context.Context, recipientID, content string, image []byte) (models.Message, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("recipient_id", recipientID); err != nil {
		return models.Message{}, err
	}
	if err := w.WriteField("content", content); err != nil {
		return models.Message{}, err
	}
	if image != nil {
		part, err := w.CreateFormFile("image", "attachment")
		if err != nil {
			return models.Message{}, err
		}
		if _, err := part.Write(image); err != nil {
			return models.Message{}, err
		}
	}
	if err := w.Close(); err != nil {
		return models.Message{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/message", &buf)
	if err != nil {
		return models.Message{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := c.do(req)
	if err != nil {
		return models.Message{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return models.Message{}, fmt.Errorf("POST /message: unexpected status %d", resp.StatusCode)
	}
	var msg models.Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return models.Message{}, fmt.Errorf("failed to parse message: %w", err)
	}
	return msg, nil
}

// ProfileImageURL returns the avatar URL for a profile id.
func (c *Client) ProfileImageURL(id string) string {
	return c.BaseURL + "/profiles/" + id + "/image"
}

// MessageImageURL returns the attachment URL for a message id.
func (c *Client) MessageImageURL(messageID string) string {
	return c.BaseURL + "/messages/" + messageID + "/image"
}
