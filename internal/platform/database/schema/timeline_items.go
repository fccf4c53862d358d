package schema

// RefTimelineItemTable represents the 'timeline_items' table
type RefTimelineItemTable struct {
	Table       string
	ID          string
	EventID     string
	Title       string
	Date        string
	Time        string
	Description string
	CreatedAt   string
}

// RefTimelineItem is the schema definition for timeline_items
var RefTimelineItem = RefTimelineItemTable{
	Table:       "timeline_items",
	ID:          "id",
	EventID:     "event_id",
	Title:       "title",
	Date:        "date",
	Time:        "time",
	Description: "description",
	CreatedAt:   "created_at",
}
