package schema

// RefCommunicationLogTable represents the 'communication_logs' table
type RefCommunicationLogTable struct {
	Table     string
	ID        string
	ClientID  string
	Date      string
	Type      string
	Notes     string
	CreatedAt string
	CreatedBy string
}

// RefCommunicationLog is the schema definition for communication_logs
var RefCommunicationLog = RefCommunicationLogTable{
	Table:     "communication_logs",
	ID:        "id",
	ClientID:  "client_id",
	Date:      "date",
	Type:      "type",
	Notes:     "notes",
	CreatedAt: "created_at",
	CreatedBy: "created_by",
}
