package domain

import "time"

// Stats holds the library totals shown on the landing screen.
// BooksAvailable is taken as reported; it is not derived from the other fields.
type Stats struct {
	BooksTotal     int64
	StudentsTotal  int64
	BooksIssued    int64
	BooksAvailable int64
	RecentIssues   *int64
	PopularBooks   []PopularBook
}

type PopularBook struct {
	Title      string
	IssueCount int64
}

// FallbackStats returns the demo figures used whenever the backend cannot be trusted.
func FallbackStats() Stats {
	return Stats{
		BooksTotal:     1250,
		StudentsTotal:  340,
		BooksIssued:    89,
		BooksAvailable: 1161,
	}
}

type Origin string

const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)

// Snapshot is the outcome of one acquisition.
type Snapshot struct {
	Stats      Stats
	Origin     Origin
	AcquiredAt time.Time
}

// Element identifiers of the four counters.
const (
	ElementTotalBooks     = "total-books"
	ElementTotalStudents  = "total-students"
	ElementBooksIssued    = "books-issued"
	ElementAvailableBooks = "available-books"
)

// Counters maps each counter element to its target value.
func (s Stats) Counters() map[string]int64 {
	return map[string]int64{
		ElementTotalBooks:     s.BooksTotal,
		ElementTotalStudents:  s.StudentsTotal,
		ElementBooksIssued:    s.BooksIssued,
		ElementAvailableBooks: s.BooksAvailable,
	}
}
