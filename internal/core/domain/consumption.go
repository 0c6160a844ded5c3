package domain

import "time"

// Consumption records that a user ate a quantity (grams) of a catalog food.
type Consumption struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	FoodID     string    `json:"food_id"`
	Quantity   float64   `json:"quantity"`
	ConsumedAt time.Time `json:"consumed_at"`
}
