package model

// Permission represents a named capability that can be assigned to users or roles.
type Permission struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "organizations.read"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "View Organizations"
}

// PermissionWildcard grants every permission. A user whose resolved set
// contains it passes any permission check.
const PermissionWildcard = "*"

// Default permissions for the system
var DefaultPermissions = []Permission{
	// Dashboard
	{Code: "dashboard.read", Name: "View Dashboard"},
	// Transactions
	{Code: "transactions.read", Name: "View Transactions"},
	{Code: "goods_receipt.read", Name: "View Goods Receipt"},
	{Code: "goods_issue.read", Name: "View Goods Issue"},
	{Code: "goods_transfer.read", Name: "View Goods Transfer"},
	{Code: "inventory_count.read", Name: "View Inventory Count"},
	{Code: "putaway.read", Name: "View Put-away"},
	// Master data
	{Code: "master_data.read", Name: "View Master Data"},
	{Code: "organizations.read", Name: "View Organizations"},
	{Code: "organizations.update", Name: "Update Organizations"},
	{Code: "branches.read", Name: "View Branches"},
	{Code: "branches.update", Name: "Update Branches"},
	{Code: "warehouses.read", Name: "View Warehouses"},
	{Code: "warehouses.update", Name: "Update Warehouses"},
	{Code: "locations.read", Name: "View Locations"},
	{Code: "products.read", Name: "View Products"},
	{Code: "partners.read", Name: "View Partners"},
	{Code: "lots.read", Name: "View Lots & Serials"},
	{Code: "uoms.read", Name: "View UOMs"},
	// Settings
	{Code: "settings.read", Name: "View Settings"},
	{Code: "users.read", Name: "View Users"},
	{Code: "users.create", Name: "Create Users"},
	{Code: "users.update", Name: "Update Users"},
	{Code: "users.delete", Name: "Delete Users"},
	{Code: "roles.read", Name: "View Roles & Permissions"},
	{Code: "inventory_policy.read", Name: "View Inventory Policy"},
}
