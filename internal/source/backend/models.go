package backend

// StatsResponse represents the /api/stats response structure.
type StatsResponse struct {
	Success bool       `json:"success"`
	Data    *StatsData `json:"data"`
	Error   string     `json:"error,omitempty"`
}

// StatsData fields are pointers so that absent values can be told apart.
type StatsData struct {
	TotalBooks     *int64        `json:"total_books"`
	TotalStudents  *int64        `json:"total_students"`
	BooksIssued    *int64        `json:"books_issued"`
	AvailableBooks *int64        `json:"available_books"`
	RecentIssues   *int64        `json:"recent_issues"`
	PopularBooks   []PopularBook `json:"popular_books"`
}

type PopularBook struct {
	Title      string `json:"title"`
	IssueCount int64  `json:"issue_count"`
}

// HealthResponse is informational; only the status code matters.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
