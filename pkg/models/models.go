package models

// FileRecord is one entry of the persisted playtime cache
type FileRecord struct {
	Name    string
	Seconds int64
}

// FileScan holds what a single pass over one log file produced
type FileScan struct {
	Name      string
	Path      string
	Seconds   int64
	Intervals int // gaps counted as activity
	Rejected  int // gaps of zero, negative or >= 5 minutes
	Skipped   int // lines without a parseable timestamp
}

// Stats summarizes a scan run
type Stats struct {
	TotalSeconds   int64 // all-time total from the cache
	Sessions       int   // files with activity in this run
	AverageSeconds int64
	FilesScanned   int
	NewSeconds     int64 // seconds credited to the total by this run
}
