package gazelle

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// InboxOptions filters an inbox page.
type InboxOptions struct {
	MessageType string // "inbox" (default) or "sentbox"
	Sort        string // "unread" to float unread messages first
	Search      string
	SearchType  string // "subject", "message" or "user"
	Page        int
}

// Inbox returns a page from the user's inbox or sentbox.
func (c *Client) Inbox(ctx context.Context, opts InboxOptions) (json.RawMessage, error) {
	switch opts.MessageType {
	case "", "inbox", "sentbox":
	default:
		return nil, fmt.Errorf("type must be 'inbox' or 'sentbox'")
	}
	switch opts.Sort {
	case "", "unread":
	default:
		return nil, fmt.Errorf("sort must be 'unread' or empty")
	}
	switch opts.SearchType {
	case "", "subject", "message", "user":
	default:
		return nil, fmt.Errorf("searchtype must be 'subject', 'message' or 'user'")
	}
	messageType := opts.MessageType
	if messageType == "" {
		messageType = "inbox"
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}
	p := Params{"type": messageType}
	p.SetInt("page", page)
	p.Set("sort", opts.Sort)
	p.Set("search", opts.Search)
	p.Set("searchtype", opts.SearchType)
	return c.Do(ctx, "inbox", p)
}

// Conversation returns one conversation from the user's inbox.
func (c *Client) Conversation(ctx context.Context, convID int) (json.RawMessage, error) {
	p := Params{"type": "viewconv"}
	p.SetInt("id", convID)
	return c.Do(ctx, "inbox", p)
}

// SendPM sends a private message. convID continues an existing
// conversation; to starts a new one.
func (c *Client) SendPM(ctx context.Context, to, subject, body, convID string) (json.RawMessage, error) {
	p := Params{"type": "send"}
	p.Set("to", to)
	p.Set("subject", subject)
	p.Set("body", body)
	p.Set("convid", convID)
	return c.Do(ctx, "inbox", p)
}

// MarkRead marks the given conversations as read.
func (c *Client) MarkRead(ctx context.Context, messages []int) (json.RawMessage, error) {
	ids := make([]string, 0, len(messages))
	for _, id := range messages {
		ids = append(ids, strconv.Itoa(id))
	}
	p := Params{"type": "markread"}
	p.Set("messages", strings.Join(ids, ","))
	return c.Do(ctx, "inbox", p)
}
