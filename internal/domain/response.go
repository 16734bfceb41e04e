package domain

// ResponseStatus tells callers how a flow ended without inspecting the text.
type ResponseStatus string

const (
	ResponseSuccess          ResponseStatus = "success"
	ResponseValidationFailed ResponseStatus = "validation_failed"
	ResponseFailed           ResponseStatus = "failed"
	ResponseInfo             ResponseStatus = "info"
)

// Response is the uniform result of every assistant flow.
type Response struct {
	Status      ResponseStatus `json:"status"`
	Text        string         `json:"text"`
	Links       []string       `json:"links"`
	Suggestions []string       `json:"suggestions"`
	// RecordID is set when the flow persisted a record.
	RecordID string `json:"record_id,omitempty"`
}

// OK reports whether the operation completed.
func (r Response) OK() bool {
	return r.Status == ResponseSuccess || r.Status == ResponseInfo
}
