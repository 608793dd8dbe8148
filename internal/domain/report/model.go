package report

// Placeholder cell values used in assembled views.
const (
	InProgress   = "In Progress"
	NotAvailable = "N/A"
)

// Row is one line of the records view: project identity plus one interval,
// already rendered to display strings.
type Row struct {
	ProjectID  int64  `json:"project_id"`
	Title      string `json:"title"`
	Details    string `json:"details"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Duration   string `json:"duration"`
	Cumulative string `json:"cumulative_time"`
}

// Table is the tabular hand-off shape consumed by export sinks: a fixed
// 7-column header plus data rows.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Header returns the fixed records-view column set.
func Header() []string {
	return []string{"Project ID", "Title", "Details", "Start Time", "End Time", "Duration", "Cumulative Time"}
}
