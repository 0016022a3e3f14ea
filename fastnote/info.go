package fastnote

import (
	"context"
	"net/http"

	"github.com/fastnote-sync/fastnote-go/models"
)

// Version reports the server build (GET /api/version). Public endpoint.
func (c *Client) Version(ctx context.Context) (models.VersionInfo, error) {
	data, err := c.do(ctx, http.MethodGet, "/version", nil, nil, nil)
	if err != nil {
		return models.VersionInfo{}, err
	}
	return models.VersionInfoFromMap(dataMap(data)), nil
}

// WebGUIConfig returns the public configuration snapshot (GET
// /api/webgui/config). Public endpoint.
func (c *Client) WebGUIConfig(ctx context.Context) (models.WebGUIConfig, error) {
	data, err := c.do(ctx, http.MethodGet, "/webgui/config", nil, nil, nil)
	if err != nil {
		return models.WebGUIConfig{}, err
	}
	return models.WebGUIConfigFromMap(dataMap(data)), nil
}
