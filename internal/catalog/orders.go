// Package catalog holds the read-only datasets the assistant answers from.
package catalog

import (
	"regexp"
	"strings"

	"github.com/spec-kit/support-assistant/internal/domain"
)

var orderIDPattern = regexp.MustCompile(`(?i)\bORD-\d{5}\b`)

var orders = map[string]domain.Order{
	"ORD-12345": {
		ID:             "ORD-12345",
		CustomerName:   "John Doe",
		Items:          []string{"Wireless Mouse", "USB-C Cable"},
		Total:          49.98,
		Status:         domain.OrderStatusShipped,
		OrderDate:      "2025-01-10",
		EstimatedDate:  "2025-01-15",
		Carrier:        "UPS",
		TrackingNumber: "1Z999AA10123456784",
		TrackingURL:    "https://www.ups.com/track?tracknum=1Z999AA10123456784",
	},
	"ORD-67890": {
		ID:            "ORD-67890",
		CustomerName:  "Jane Smith",
		Items:         []string{"Mechanical Keyboard"},
		Total:         129.99,
		Status:        domain.OrderStatusProcessing,
		OrderDate:     "2025-01-12",
		EstimatedDate: "2025-01-18",
		Note:          "Your order is being prepared at our warehouse.",
	},
	"ORD-11111": {
		ID:             "ORD-11111",
		CustomerName:   "Alice Johnson",
		Items:          []string{"27\" 4K Monitor"},
		Total:          349.00,
		Status:         domain.OrderStatusDelivered,
		OrderDate:      "2025-01-02",
		EstimatedDate:  "2025-01-07",
		Carrier:        "FedEx",
		TrackingNumber: "794644790132",
		TrackingURL:    "https://www.fedex.com/fedextrack/?trknbr=794644790132",
		Note:           "Delivered to front door.",
	},
	"ORD-22222": {
		ID:           "ORD-22222",
		CustomerName: "Bob Williams",
		Items:        []string{"Noise-Cancelling Headphones"},
		Total:        199.99,
		Status:       domain.OrderStatusCancelled,
		OrderDate:    "2025-01-05",
		Note:         "Refund issued to the original payment method within 5-7 business days.",
	},
	"ORD-33333": {
		ID:             "ORD-33333",
		CustomerName:   "Sarah Johnson",
		Items:          []string{"Laptop Stand", "Webcam"},
		Total:          89.50,
		Status:         domain.OrderStatusOutForDelivery,
		OrderDate:      "2025-01-11",
		EstimatedDate:  "2025-01-14",
		Carrier:        "USPS",
		TrackingNumber: "9400111899223197428490",
		TrackingURL:    "https://tools.usps.com/go/TrackConfirmAction?tLabels=9400111899223197428490",
	},
}

// ExtractOrderID returns the first order id mentioned in text, upper-cased.
func ExtractOrderID(text string) (string, bool) {
	match := orderIDPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return strings.ToUpper(match), true
}

// LookupOrder finds an order by id.
func LookupOrder(id string) (domain.Order, bool) {
	order, ok := orders[strings.ToUpper(strings.TrimSpace(id))]
	return order, ok
}
