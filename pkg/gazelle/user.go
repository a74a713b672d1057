package gazelle

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

// Index returns the API version/root record.
func (c *Client) Index(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "", nil)
}

// GetQuickUser returns the current user's quick info, including the auth
// and pass keys used by the download endpoint.
func (c *Client) GetQuickUser(ctx context.Context) (*QuickUser, error) {
	var u QuickUser
	if err := c.doJSON(ctx, "quick_user", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// sessionUser returns the cached quick_user record, fetching it on first
// use. Once populated it is never refreshed for the client's lifetime.
func (c *Client) sessionUser(ctx context.Context) (*QuickUser, error) {
	c.userMu.Lock()
	defer c.userMu.Unlock()
	if c.user != nil {
		return c.user, nil
	}
	u, err := c.GetQuickUser(ctx)
	if err != nil {
		return nil, err
	}
	c.user = u
	return c.user, nil
}

// UserRatioStats returns the current user's ratio stats.
func (c *Client) UserRatioStats(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "user_ratio_stats", nil)
}

// UserProfile returns a user's profile by id or by name; exactly one of the
// two must be provided.
func (c *Client) UserProfile(ctx context.Context, userID int, name string) (json.RawMessage, error) {
	if userID == 0 && name == "" {
		return nil, fmt.Errorf("id or name must be provided")
	}
	if userID != 0 && name != "" {
		return nil, fmt.Errorf("only one of id or name can be provided")
	}
	p := Params{}
	p.SetInt("id", userID)
	p.Set("username", name)
	return c.Do(ctx, "user", p)
}

// Userlog returns a page of the user log, optionally filtered by search.
func (c *Client) Userlog(ctx context.Context, search string, page, limit int) (json.RawMessage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	p := Params{}
	p.Set("search", search)
	p.SetInt("page", page)
	p.SetInt("limit", limit)
	return c.Do(ctx, "userlog", p)
}

// UserCommunityStats returns a user's community stats.
func (c *Client) UserCommunityStats(ctx context.Context, userID int) (json.RawMessage, error) {
	p := Params{}
	p.SetInt("userid", userID)
	return c.Do(ctx, "user_community_stats", p)
}
