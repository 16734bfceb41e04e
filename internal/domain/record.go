package domain

// Record is a persisted unit of support data with a prefix-coded identifier.
type Record interface {
	RecordID() string
}
