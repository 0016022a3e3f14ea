package fastnote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fastnote-sync/fastnote-go/models"
)

// Register creates a new account (POST /api/user/register, form encoded).
// When the response carries a token it is stored on the client, so the next
// call is already authenticated.
func (c *Client) Register(ctx context.Context, email, username, password, confirmPassword string) (models.UserInfo, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("username", username)
	form.Set("password", password)
	form.Set("confirmPassword", confirmPassword)

	data, err := c.do(ctx, http.MethodPost, "/user/register", nil, form, nil)
	if err != nil {
		return models.UserInfo{}, err
	}
	user := models.UserInfoFromMap(dataMap(data))
	if user.Token != "" {
		c.SetToken(user.Token)
	}
	return user, nil
}

// Login authenticates with a username or email plus password (POST
// /api/user/login, form encoded) and stores the returned token.
func (c *Client) Login(ctx context.Context, credentials, password string) (models.UserInfo, error) {
	form := url.Values{}
	form.Set("credentials", credentials)
	form.Set("password", password)

	data, err := c.do(ctx, http.MethodPost, "/user/login", nil, form, nil)
	if err != nil {
		return models.UserInfo{}, err
	}
	user := models.UserInfoFromMap(dataMap(data))
	if user.Token != "" {
		c.SetToken(user.Token)
	}
	return user, nil
}

// GetUserInfo returns the currently authenticated user (GET /api/user/info).
func (c *Client) GetUserInfo(ctx context.Context) (models.UserInfo, error) {
	data, err := c.do(ctx, http.MethodGet, "/user/info", nil, nil, nil)
	if err != nil {
		return models.UserInfo{}, err
	}
	return models.UserInfoFromMap(dataMap(data)), nil
}

// ChangePassword changes the current user's password (POST
// /api/user/change_password, form encoded). The returned object's shape is
// server-defined and unspecified beyond being a key-value object; it is
// usually empty.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, password, confirmPassword string) (map[string]any, error) {
	form := url.Values{}
	form.Set("oldPassword", oldPassword)
	form.Set("password", password)
	form.Set("confirmPassword", confirmPassword)

	data, err := c.do(ctx, http.MethodPost, "/user/change_password", nil, form, nil)
	if err != nil {
		return nil, err
	}
	return dataMap(data), nil
}
