package catalog

import (
	"fmt"
	"strings"

	"github.com/spec-kit/support-assistant/internal/domain"
)

// HelpCenterURL is linked from every FAQ answer.
const HelpCenterURL = "https://techshop.com/help"

var knowledgeBase = []domain.FAQEntry{
	{
		Topic:    "Operating hours",
		Keywords: []string{"hours", "open", "opening", "closing", "weekend"},
		Answer:   "Our customer support team is available Monday to Friday, 9 AM to 6 PM EST, and Saturday, 10 AM to 4 PM EST. We are closed on Sundays and public holidays.",
		Link:     "https://techshop.com/help/contact",
	},
	{
		Topic:    "Shipping",
		Keywords: []string{"shipping", "ship", "delivery", "express", "deliver"},
		Answer:   "Standard shipping takes 5-7 business days and is free on orders over $50 (otherwise $5.99). Express shipping takes 2-3 business days and costs $14.99. Overnight shipping is available for $29.99.",
		Link:     "https://techshop.com/help/shipping",
	},
	{
		Topic:    "Returns and refunds",
		Keywords: []string{"return", "refund", "exchange", "money back"},
		Answer:   "You can return most items within 30 days of delivery for a full refund, provided they are unused and in the original packaging. Refunds are processed within 5-7 business days after we receive the item.",
		Link:     "https://techshop.com/help/returns",
	},
	{
		Topic:    "Payment methods",
		Keywords: []string{"payment", "pay", "credit card", "paypal", "apple pay", "google pay"},
		Answer:   "We accept Visa, Mastercard, American Express, Discover, PayPal, Apple Pay and Google Pay. All payments are processed securely.",
		Link:     "https://techshop.com/help/payments",
	},
	{
		Topic:    "Contacting support",
		Keywords: []string{"contact", "support", "email", "phone", "call"},
		Answer:   "You can reach us by email at support@techshop.com, by phone at 1-800-TECHSHOP (1-800-832-4746) during business hours, or through the live chat on our website.",
		Link:     "https://techshop.com/help/contact",
	},
	{
		Topic:    "Warranty",
		Keywords: []string{"warranty", "guarantee", "broken", "defect", "repair"},
		Answer:   "All electronics come with a 1-year manufacturer warranty. Extended warranties of 2 or 3 years can be purchased at checkout.",
		Link:     "https://techshop.com/help/warranty",
	},
}

// KnowledgeBase returns the FAQ entries in display order.
func KnowledgeBase() []domain.FAQEntry {
	out := make([]domain.FAQEntry, len(knowledgeBase))
	copy(out, knowledgeBase)
	return out
}

// KnowledgeBaseExcerpt renders the knowledge base as plain text for the
// completion service's system instruction.
func KnowledgeBaseExcerpt() string {
	var b strings.Builder
	for _, entry := range knowledgeBase {
		fmt.Fprintf(&b, "## %s\n%s\n\n", entry.Topic, entry.Answer)
	}
	return strings.TrimSpace(b.String())
}

// MatchFAQ returns the entry whose keywords best match question. Ties go to
// the earlier entry.
func MatchFAQ(question string) (domain.FAQEntry, bool) {
	q := strings.ToLower(question)
	best, bestScore := -1, 0
	for i, entry := range knowledgeBase {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(q, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return domain.FAQEntry{}, false
	}
	return knowledgeBase[best], true
}
