package gazelle

import (
	"context"

	"github.com/goccy/go-json"
)

// GetWikiArticle returns a wiki article by id.
func (c *Client) GetWikiArticle(ctx context.Context, articleID int) (json.RawMessage, error) {
	p := Params{}
	p.SetInt("id", articleID)
	return c.Do(ctx, "wiki", p)
}

// GetSiteLog returns a page of the site log.
func (c *Client) GetSiteLog(ctx context.Context, page, limit int, search string) (json.RawMessage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 25
	}
	p := Params{}
	p.SetInt("page", page)
	p.SetInt("limit", limit)
	p.Set("search", search)
	return c.Do(ctx, "sitelog", p)
}

// GetThreadInfo returns a forum thread's info.
func (c *Client) GetThreadInfo(ctx context.Context, threadID int) (json.RawMessage, error) {
	p := Params{"type": "thread_info"}
	p.SetInt("id", threadID)
	return c.Do(ctx, "forums", p)
}

// GetSiteStats returns the site stats.
func (c *Client) GetSiteStats(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "site_stats", nil)
}

// GetTorrentStats returns the site's torrent stats.
func (c *Client) GetTorrentStats(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "torrent_stats", nil)
}

// GetEconomicStats returns the site's economic stats.
func (c *Client) GetEconomicStats(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "economic_stats", nil)
}

// GetItemStats returns an item's stats.
func (c *Client) GetItemStats(ctx context.Context, itemID int) (json.RawMessage, error) {
	p := Params{}
	p.SetInt("itemid", itemID)
	return c.Do(ctx, "item_stats", p)
}
