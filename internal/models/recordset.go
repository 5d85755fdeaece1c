package models

// Status tags a record set with the last pipeline stage that processed it.
// Each stage checks the tag on entry, which makes the load -> clean ->
// categorize sequencing contract explicit instead of relying on ad hoc
// field inspection.
type Status int

const (
	// StatusRaw marks a set as loaded but not yet cleaned. Field values
	// are arbitrary text.
	StatusRaw Status = iota
	// StatusCleaned marks a set whose surviving records all carry a valid
	// date and amount.
	StatusCleaned
	// StatusCategorized marks a set whose records all carry a category.
	StatusCategorized
)

// String returns the human-readable stage name.
func (s Status) String() string {
	switch s {
	case StatusRaw:
		return "raw"
	case StatusCleaned:
		return "cleaned"
	case StatusCategorized:
		return "categorized"
	default:
		return "unknown"
	}
}

// RecordSet is the unit of work passed between pipeline stages: a batch of
// records plus the stage tag. Sets are value types; stages return new sets
// rather than mutating their input's slice header.
type RecordSet struct {
	Status  Status
	Records []Record
}

// Len returns the number of records in the set.
func (rs RecordSet) Len() int {
	return len(rs.Records)
}

// Empty reports whether the set holds no records.
func (rs RecordSet) Empty() bool {
	return len(rs.Records) == 0
}
