package order

import "time"

type Status string

// Orders are created in Processing; later lifecycle transitions are
// handled by back-office tooling, not this service.
const StatusProcessing Status = "Processing"

type Order struct {
	ID              int         `json:"id"`
	UserID          int         `json:"userId"`
	Address         string      `json:"address"`
	Status          Status      `json:"status"`
	TotalAmount     float64     `json:"totalAmount"`
	UsedBonusPoints int         `json:"usedBonusPoints"`
	FinalAmount     float64     `json:"finalAmount"`
	CreatedAt       time.Time   `json:"createdAt"`
	Items           []OrderItem `json:"items"`
}

// OrderItem freezes price and weight as they were at checkout time;
// they are never re-read from the catalog.
type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"orderId"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Weight    float64 `json:"weight"`
}

type CheckoutItem struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Weight    float64 `json:"weight"`
}

type CheckoutParams struct {
	UserID         int
	Items          []CheckoutItem
	Address        string
	UseBonusPoints bool
}

// Receipt is what the buyer gets back from a successful checkout.
type Receipt struct {
	Order             *Order `json:"order"`
	BonusPointsEarned int    `json:"bonusPointsEarned"`
}

type OrderSummary struct {
	ID          int       `json:"id"`
	Status      Status    `json:"status"`
	FinalAmount float64   `json:"finalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
	Address     string    `json:"address"`
}
