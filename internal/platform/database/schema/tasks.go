package schema

// RefTaskTable represents the 'tasks' table
type RefTaskTable struct {
	Table       string
	ID          string
	EventID     string
	Title       string
	Description string
	DueDate     string
	Completed   string
	AssignedTo  string
	CreatedAt   string
	UpdatedAt   string
}

// RefTask is the schema definition for tasks
var RefTask = RefTaskTable{
	Table:       "tasks",
	ID:          "id",
	EventID:     "event_id",
	Title:       "title",
	Description: "description",
	DueDate:     "due_date",
	Completed:   "completed",
	AssignedTo:  "assigned_to",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}
