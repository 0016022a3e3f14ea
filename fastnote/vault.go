package fastnote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fastnote-sync/fastnote-go/models"
)

// ListVaults returns all vaults visible to the authenticated user (GET
// /api/vault). The endpoint has returned both a bare array and an object
// wrapping the array under "list" across server versions; both shapes are
// accepted, and a null data field yields an empty slice.
func (c *Client) ListVaults(ctx context.Context) ([]models.VaultInfo, error) {
	data, err := c.do(ctx, http.MethodGet, "/vault", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return vaultList(data), nil
}

func vaultList(data any) []models.VaultInfo {
	var items []any
	switch v := data.(type) {
	case []any:
		items = v
	case map[string]any:
		items, _ = v["list"].([]any)
	}

	out := make([]models.VaultInfo, 0, len(items))
	for _, it := range items {
		out = append(out, models.VaultInfoFromMap(dataMap(it)))
	}
	return out
}

// CreateVault creates a vault (POST /api/vault, JSON body).
func (c *Client) CreateVault(ctx context.Context, name string) (models.VaultInfo, error) {
	data, err := c.do(ctx, http.MethodPost, "/vault", nil, nil, map[string]any{
		"vault": name,
	})
	if err != nil {
		return models.VaultInfo{}, err
	}
	return models.VaultInfoFromMap(dataMap(data)), nil
}

// UpdateVault renames a vault (POST /api/vault with id, JSON body).
func (c *Client) UpdateVault(ctx context.Context, id int64, name string) (models.VaultInfo, error) {
	data, err := c.do(ctx, http.MethodPost, "/vault", nil, nil, map[string]any{
		"id":    id,
		"vault": name,
	})
	if err != nil {
		return models.VaultInfo{}, err
	}
	return models.VaultInfoFromMap(dataMap(data)), nil
}

// DeleteVault deletes a vault by id (DELETE /api/vault?id=...). The
// returned object's shape is server-defined and unspecified beyond being a
// key-value object.
func (c *Client) DeleteVault(ctx context.Context, id int64) (map[string]any, error) {
	q := url.Values{}
	q.Set("id", strconv.FormatInt(id, 10))

	data, err := c.do(ctx, http.MethodDelete, "/vault", q, nil, nil)
	if err != nil {
		return nil, err
	}
	return dataMap(data), nil
}
