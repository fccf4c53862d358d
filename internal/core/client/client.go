package client

import (
	"time"

	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/convert"
	"github.com/planora/api/pkg/pointer"
)

// Client is a person or organization commissioning events.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldAddress = "address"
)

// Row is the flattened wire shape of the clients table.
type Row struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	UserID    *string `json:"user_id"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

// Domain validates a wire row and maps it into a [Client].
func (r Row) Domain() (Client, error) {
	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Required(FieldName, r.Name)
	v.Email(FieldEmail, r.Email)

	if err := v.Err(); err != nil {
		return Client{}, err
	}

	return Client{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     pointer.Val(r.Phone),
		Address:   pointer.Val(r.Address),
		CreatedAt: convert.ToTime(pointer.Val(r.CreatedAt)),
	}, nil
}

// InsertRow is the wire shape for creating a client.
type InsertRow struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateRow is the wire shape for patching a client. Nil fields are left
// untouched by the remote service.
type UpdateRow struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}
