package domain

// FAQEntry is one topic of the knowledge base handed to the completion service.
type FAQEntry struct {
	Topic    string
	Keywords []string
	Answer   string
	Link     string
}
