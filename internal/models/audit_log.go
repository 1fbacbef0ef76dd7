package models

// AuditLog records a mutating action for later inspection.
// Writes are best-effort; failures are logged and never surfaced to clients.
type AuditLog struct {
	Base
	Action       string `gorm:"not null;index" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	ClientIP     string `json:"client_ip"`
	Details      string `gorm:"type:text" json:"details"`
}
