package model

import "time"

// Order is an immutable pickup request identified by a unique
// 20-character order id. Orders are created once and never mutated.
type Order struct {
	ID            int64
	OrderID       string
	Name          string
	Email         string
	Phone         string
	PickupDate    time.Time
	PickupTime    string
	PickupAddress string
	DropAddress   string
	Purpose       string
	EntryDate     time.Time
}
