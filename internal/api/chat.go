package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/sidra/lingua/internal/errors"
	"github.com/sidra/lingua/internal/models"
)

// FallbackReply is substituted when the backend returns a parseable body
// with no reply field at all. The backend is expected to always send
// assistant_reply; tolerating its absence is a designed leniency.
const FallbackReply = "No reply"

// chatRequest is the wire format of POST /chat.
type chatRequest struct {
	History   []models.HistoryEntry `json:"history"`
	UserInput string                `json:"user_input"`
}

// SendChat posts the conversation history plus the latest input to the
// backend and returns the assistant's reply text.
//
// The history must already include the just-submitted user message; the
// raw input travels again in user_input, matching the backend contract.
func (c *Client) SendChat(history []models.HistoryEntry, userInput string) (string, error) {
	endpoint := c.endpoint("/chat")

	if history == nil {
		history = []models.HistoryEntry{}
	}

	payload, err := json.Marshal(chatRequest{
		History:   history,
		UserInput: userInput,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError(endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apierrors.NewAPIError(resp.StatusCode, endpoint, strings.TrimSpace(string(body)))
	}

	return extractReply(body)
}

// extractReply pulls the reply text out of a 2xx response body. The
// canonical field is assistant_reply; response is accepted as a fallback.
// A valid JSON object with neither field yields FallbackReply.
func extractReply(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError("response body is not valid JSON")
	}

	parsed := gjson.ParseBytes(body)

	if reply := parsed.Get("assistant_reply"); reply.Exists() {
		return reply.String(), nil
	}
	if reply := parsed.Get("response"); reply.Exists() {
		return reply.String(), nil
	}

	return FallbackReply, nil
}

// classifyTransportError maps errors from http.Client.Do onto the
// structured error types.
func classifyTransportError(endpoint string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return apierrors.NewTimeoutError(endpoint)
	}
	return apierrors.NewNetworkError(endpoint, err)
}
