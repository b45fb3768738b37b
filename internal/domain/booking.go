package domain

import "time"

type Booking struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      time.Time `json:"date"`
	House     string    `json:"house"`
	CreatedAt time.Time `json:"createdAt"`
}
