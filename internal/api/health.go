package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/sidra/lingua/internal/errors"
)

// Health probes GET /health and returns the reported status string,
// normally "ok".
func (c *Client) Health() (string, error) {
	endpoint := c.endpoint("/health")

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return "", classifyTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError(endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apierrors.NewAPIError(resp.StatusCode, endpoint, strings.TrimSpace(string(body)))
	}

	status := gjson.GetBytes(body, "status")
	if !status.Exists() {
		return "", apierrors.NewParseError("health response missing status field")
	}

	return status.String(), nil
}
