package entity

import (
	"github.com/google/uuid"
)

type ShowStatus string

const (
	ShowStatusActive    ShowStatus = "Active"
	ShowStatusCancelled ShowStatus = "Cancelled"
)

// Show is a scheduled screening. Cancelled is terminal: the status column
// transitions Active -> Cancelled exactly once, enforced by a conditional
// update in the repository.
type Show struct {
	Base
	MovieID    uuid.UUID  `db:"movie_id"`
	MovieTitle string     `db:"movie_title"`
	ShowDate   string     `db:"show_date"`
	ShowTime   string     `db:"show_time"`
	Price      int64      `db:"price"`
	Status     ShowStatus `db:"status"`
}
