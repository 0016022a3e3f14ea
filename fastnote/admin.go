package fastnote

import (
	"context"
	"net/http"

	"github.com/fastnote-sync/fastnote-go/models"
)

// GetAdminConfig returns the full server configuration (GET
// /api/admin/config). Requires an administrator token; other callers get
// code 445.
func (c *Client) GetAdminConfig(ctx context.Context) (models.AdminConfig, error) {
	data, err := c.do(ctx, http.MethodGet, "/admin/config", nil, nil, nil)
	if err != nil {
		return models.AdminConfig{}, err
	}
	return models.AdminConfigFromMap(dataMap(data)), nil
}

// UpdateAdminConfig applies the given configuration fields (POST
// /api/admin/config, JSON body) and returns the resulting snapshot. The
// accepted field set is open-ended and server-defined, hence the map
// parameter:
//
//	cfg, err := c.UpdateAdminConfig(ctx, map[string]any{
//		"registerIsEnable":    true,
//		"historyKeepVersions": 200,
//	})
func (c *Client) UpdateAdminConfig(ctx context.Context, fields map[string]any) (models.AdminConfig, error) {
	if fields == nil {
		fields = map[string]any{}
	}

	data, err := c.do(ctx, http.MethodPost, "/admin/config", nil, nil, fields)
	if err != nil {
		return models.AdminConfig{}, err
	}
	return models.AdminConfigFromMap(dataMap(data)), nil
}
