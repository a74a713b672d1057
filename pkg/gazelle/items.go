package gazelle

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// GetItemInfo returns store item info by a single id or a list of ids;
// the two forms are mutually exclusive.
func (c *Client) GetItemInfo(ctx context.Context, itemID int, itemIDs []int) (json.RawMessage, error) {
	if itemID != 0 && len(itemIDs) > 0 {
		return nil, fmt.Errorf("only one of item id or item ids can be provided")
	}
	p := Params{}
	p.SetInt("itemid", itemID)
	if len(itemIDs) > 0 {
		p["itemids"] = "[" + joinInts(itemIDs) + "]"
	}
	return c.Do(ctx, "store", p)
}

// ItemSearchOptions filters a store item search.
type ItemSearchOptions struct {
	Search     string
	SearchMore *bool
	Category   string
	ItemType   int
	CostType   int
	CostAmount int
	InStock    *bool
	NoFeatured *bool
	OrderBy    string
	OrderWay   string
	Page       int
	Limit      int
}

// SearchItems searches the store.
func (c *Client) SearchItems(ctx context.Context, opts ItemSearchOptions) (json.RawMessage, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 30
	}
	p := Params{"type": "search"}
	p.Set("search", opts.Search)
	p.SetBool("search_more", opts.SearchMore)
	p.Set("category", opts.Category)
	p.SetInt("item_type", opts.ItemType)
	p.SetInt("cost_type", opts.CostType)
	p.SetInt("cost_amount", opts.CostAmount)
	p.SetBool("in_stock", opts.InStock)
	p.SetBool("no_featured", opts.NoFeatured)
	p.Set("order_by", opts.OrderBy)
	p.Set("order_way", opts.OrderWay)
	p.SetInt("page", page)
	p.SetInt("limit", limit)
	return c.Do(ctx, "store", p)
}

// GetUserItems returns a user's inventory. userID 0 means self.
func (c *Client) GetUserItems(ctx context.Context, userID int, includeInfo bool) (json.RawMessage, error) {
	p := Params{"type": "inventory"}
	p.SetInt("userid", userID)
	p.SetBool("include_info", Bool(includeInfo))
	return c.Do(ctx, "items", p)
}

// GetUserEquipment returns a user's equippable items. userID 0 means self.
func (c *Client) GetUserEquipment(ctx context.Context, userID int, includeInfo bool) (json.RawMessage, error) {
	p := Params{"type": "users_equippable"}
	p.SetInt("userid", userID)
	p.SetBool("include_info", Bool(includeInfo))
	return c.Do(ctx, "items", p)
}

// GetUsersEquipped returns your own equipped items.
func (c *Client) GetUsersEquipped(ctx context.Context, includeInfo bool) (json.RawMessage, error) {
	p := Params{"type": "users_equipped"}
	p.SetBool("include_info", Bool(includeInfo))
	return c.Do(ctx, "items", p)
}

// GetUserBuffs returns your own buffs.
func (c *Client) GetUserBuffs(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "items", Params{"type": "users_buffs"})
}

// GetUserCraftedRecipes returns your own crafted recipes.
func (c *Client) GetUserCraftedRecipes(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "items", Params{"type": "crafted_recipes"})
}

// GetCraftingRecipe returns crafting recipes by a single id or a list of
// ids; the two forms are mutually exclusive.
func (c *Client) GetCraftingRecipe(ctx context.Context, recipeID int, recipeIDs []int) (json.RawMessage, error) {
	if recipeID != 0 && len(recipeIDs) > 0 {
		return nil, fmt.Errorf("only one of recipe id or recipe ids can be provided")
	}
	p := Params{"type": "get_crafting_recipe"}
	p.SetInt("recipeid", recipeID)
	p.Set("recipeids", joinInts(recipeIDs))
	return c.Do(ctx, "items", p)
}

// GetCraftingResult finds or takes the result of a crafting recipe. action
// is "find" or "take"; recipeID and recipe are mutually exclusive.
func (c *Client) GetCraftingResult(ctx context.Context, action string, recipeID int, recipe string) (json.RawMessage, error) {
	if recipeID != 0 && recipe != "" {
		return nil, fmt.Errorf("only one of recipe id or recipe can be provided")
	}
	if action == "" {
		action = "find"
	}
	p := Params{"type": "crafting_result", "action": action}
	p.SetInt("recipeid", recipeID)
	p.Set("recipe", recipe)
	return c.Do(ctx, "items", p)
}

// PurchaseItem purchases an item from the store.
func (c *Client) PurchaseItem(ctx context.Context, itemID, amount int) (json.RawMessage, error) {
	p := Params{"type": "purchase"}
	p.SetInt("itemid", itemID)
	p.SetInt("amount", amount)
	return c.Do(ctx, "items", p)
}

// UseItem uses an item from the inventory.
func (c *Client) UseItem(ctx context.Context, itemID, amount int) (json.RawMessage, error) {
	p := Params{"type": "use"}
	p.SetInt("itemid", itemID)
	p.SetInt("amount", amount)
	return c.Do(ctx, "items", p)
}

// UnpackItem unpacks an item.
func (c *Client) UnpackItem(ctx context.Context, itemID, amount int) (json.RawMessage, error) {
	p := Params{"type": "unpack"}
	p.SetInt("itemid", itemID)
	p.SetInt("amount", amount)
	return c.Do(ctx, "items", p)
}

// EquipItem equips a piece of equipment by its equip id.
func (c *Client) EquipItem(ctx context.Context, equipID int) (json.RawMessage, error) {
	p := Params{"type": "equip"}
	p.SetInt("equipid", equipID)
	return c.Do(ctx, "items", p)
}

// UnequipItem unequips by equip id or by slot id; the two are mutually
// exclusive.
func (c *Client) UnequipItem(ctx context.Context, equipID, slotID int) (json.RawMessage, error) {
	if equipID != 0 && slotID != 0 {
		return nil, fmt.Errorf("only one of equip id or slot id can be provided")
	}
	p := Params{"type": "unequip"}
	p.SetInt("equipid", equipID)
	p.SetInt("slotid", slotID)
	return c.Do(ctx, "items", p)
}

func joinInts(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ",")
}
