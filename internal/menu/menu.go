// Package menu defines the static navigation tree and its permission filter.
package menu

import "strings"

// Item is one navigation entry. The tree is defined at build time and never
// mutated; visibility is derived per user, not stored.
type Item struct {
	Label      string `json:"label"`
	Path       string `json:"path"`
	Icon       Icon   `json:"icon"`
	Permission string `json:"permission,omitempty"` // empty means no permission required
	Children   []Item `json:"children,omitempty"`
}

// Items is the full navigation tree before permission filtering.
var Items = []Item{
	{Label: "Dashboard", Path: "/dashboard", Icon: IconHome, Permission: "dashboard.read"},
	{
		Label: "Transactions", Path: "/transactions", Icon: IconArrowRightLeft, Permission: "transactions.read",
		Children: []Item{
			{Label: "Goods Receipt", Path: "/transactions/goods-receipt", Icon: IconPackagePlus, Permission: "goods_receipt.read"},
			{Label: "Goods Issue", Path: "/transactions/goods-issue", Icon: IconPackageMinus, Permission: "goods_issue.read"},
			{Label: "Goods Transfer", Path: "/transactions/goods-transfer", Icon: IconTruck, Permission: "goods_transfer.read"},
			{Label: "Inventory Count", Path: "/transactions/inventory-count", Icon: IconClipboardList, Permission: "inventory_count.read"},
			{Label: "Put-away", Path: "/transactions/put-away", Icon: IconPackageSearch, Permission: "putaway.read"},
		},
	},
	{
		Label: "Master Data", Path: "/master-data", Icon: IconDatabase, Permission: "master_data.read",
		Children: []Item{
			{Label: "Organizations", Path: "/master-data/organizations", Icon: IconLandmark, Permission: "organizations.read"},
			{Label: "Branches", Path: "/master-data/branches", Icon: IconBuilding, Permission: "branches.read"},
			{Label: "Warehouses", Path: "/master-data/warehouses", Icon: IconWarehouse, Permission: "warehouses.read"},
			{Label: "Locations", Path: "/master-data/locations", Icon: IconMapPin, Permission: "locations.read"},
			{Label: "Products", Path: "/master-data/products", Icon: IconPackage, Permission: "products.read"},
			{Label: "Partners", Path: "/master-data/partners", Icon: IconHandshake, Permission: "partners.read"},
			{Label: "Lots & Serials", Path: "/master-data/lots", Icon: IconSlidersHorizontal, Permission: "lots.read"},
			{Label: "UOMs", Path: "/master-data/uoms", Icon: IconScale, Permission: "uoms.read"},
		},
	},
	{
		Label: "Settings", Path: "/settings", Icon: IconSettings, Permission: "settings.read",
		Children: []Item{
			{Label: "Users", Path: "/settings/users", Icon: IconUsers, Permission: "users.read"},
			{Label: "Roles & Permissions", Path: "/settings/roles", Icon: IconShieldCheck, Permission: "roles.read"},
			{Label: "Inventory Policy", Path: "/settings/inventory-policy", Icon: IconScaling, Permission: "inventory_policy.read"},
		},
	},
}

// Visible filters the tree against a permission predicate. Children are
// filtered first: a parent is included iff its filtered child list is
// non-empty, regardless of the parent's own required permission. A leaf is
// included iff it has no required permission or the predicate accepts it.
func Visible(items []Item, hasPermission func(string) bool) []Item {
	result := []Item{}
	for _, item := range items {
		if len(item.Children) > 0 {
			children := Visible(item.Children, hasPermission)
			if len(children) > 0 {
				filtered := item
				filtered.Children = children
				result = append(result, filtered)
			}
			continue
		}
		if item.Permission == "" || hasPermission(item.Permission) {
			result = append(result, item)
		}
	}
	return result
}

// ActiveRoot returns the top-level entry owning the given route path, used to
// auto-expand the active section on navigation.
func ActiveRoot(path string) (Item, bool) {
	segments := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	root := "/" + segments[0]
	for _, item := range Items {
		if item.Path == root {
			return item, true
		}
		for _, child := range item.Children {
			if strings.HasPrefix(path, child.Path) {
				return item, true
			}
		}
	}
	return Item{}, false
}
