package domain

// Category labels splits for reporting purposes.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary key (UUID)
	UserID     string `json:"userID"`     // Owning user
	Name       string `json:"name"`
	Icon       string `json:"icon,omitempty"`
	AuditFields
}
