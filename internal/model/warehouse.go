package model

type Warehouse struct {
	BaseModel
	Code     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// WarehouseStatus is the dashboard's status-table row.
type WarehouseStatus struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Status string `json:"status"` // "Active" or "Inactive"
}

// ToStatus maps the active flag to a display status
func (w *Warehouse) ToStatus() WarehouseStatus {
	status := "Inactive"
	if w.IsActive {
		status = "Active"
	}
	return WarehouseStatus{Code: w.Code, Name: w.Name, Status: status}
}
