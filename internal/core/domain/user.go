package domain

// User is a principal that can hold custody of products. The authenticated
// user ID is what gets stamped into owner and audit fields.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	AuditFields
}
