package client

import (
	"time"

	"github.com/planora/api/internal/platform/validate"
	"github.com/planora/api/pkg/convert"
	"github.com/planora/api/pkg/pointer"
	"github.com/planora/api/pkg/slice"
)

// CommType classifies a communication log entry.
type CommType string

const (
	CommEmail   CommType = "email"
	CommPhone   CommType = "phone"
	CommMeeting CommType = "meeting"
	CommMessage CommType = "message"
)

func (t CommType) Valid() bool {
	switch t {
	case CommEmail, CommPhone, CommMeeting, CommMessage:
		return true
	}
	return false
}

func commTypeNames() []string {
	return []string{
		string(CommEmail),
		string(CommPhone),
		string(CommMeeting),
		string(CommMessage),
	}
}

// CommunicationLog is a single dated interaction with a client.
type CommunicationLog struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Date      string    `json:"date"`
	Type      CommType  `json:"type"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// LogRow is the flattened wire shape of the communication_logs table.
type LogRow struct {
	ID        string  `json:"id"`
	ClientID  string  `json:"client_id"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Summary   string  `json:"summary"`
	CreatedAt *string `json:"created_at"`
}

// Domain validates a wire row and maps it into a [CommunicationLog].
func (r LogRow) Domain() (CommunicationLog, error) {
	v := &validate.Validator{}
	v.Required("id", r.ID)
	v.Required("client_id", r.ClientID)
	v.Date("date", r.Date)
	v.OneOf("type", r.Type, commTypeNames()...)
	v.Required("summary", r.Summary)

	if err := v.Err(); err != nil {
		return CommunicationLog{}, err
	}

	return CommunicationLog{
		ID:        r.ID,
		ClientID:  r.ClientID,
		Date:      r.Date,
		Type:      CommType(r.Type),
		Summary:   r.Summary,
		CreatedAt: convert.ToTime(pointer.Val(r.CreatedAt)),
	}, nil
}

// InsertLogRow is the wire shape for recording a communication.
type InsertLogRow struct {
	ClientID string `json:"client_id"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Summary  string `json:"summary"`
}

// LogsFor returns the communication history of one client, preserving
// snapshot order.
func LogsFor(logs []CommunicationLog, clientID string) []CommunicationLog {
	return slice.Filter(logs, func(l CommunicationLog) bool {
		return l.ClientID == clientID
	})
}
