// Package schema registers the wire-level table and column names of the
// hosted data service. Query construction (ordering, equality filters) and
// row mapping reference these instead of string literals.
package schema

// RefClientTable represents the 'clients' table
type RefClientTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	UserID    string
	CreatedAt string
	UpdatedAt string
}

// RefClient is the schema definition for clients
var RefClient = RefClientTable{
	Table:     "clients",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Address:   "address",
	UserID:    "user_id",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
