package domain

// OrderStatus enumerates fulfilment states in the order dataset.
type OrderStatus string

const (
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// Order is a read-only entry from the order dataset.
type Order struct {
	ID             string
	CustomerName   string
	Items          []string
	Total          float64
	Status         OrderStatus
	OrderDate      string
	EstimatedDate  string
	Carrier        string
	TrackingNumber string
	TrackingURL    string
	Note           string
}
