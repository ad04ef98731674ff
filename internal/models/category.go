package models

// Category is the categories table row.
type Category struct {
	CategoryID string `db:"category_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	Icon       string `db:"icon"`
	AuditFields
}
