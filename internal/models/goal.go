package models

import "time"

// Goal represents a savings goal.
// Progress is never stored; it is derived from the amounts on every read.
type Goal struct {
	Base
	Title         string    `gorm:"not null" json:"title"`
	TargetAmount  float64   `gorm:"not null" json:"target_amount"`
	CurrentAmount float64   `gorm:"not null;default:0" json:"current_amount"`
	Deadline      time.Time `json:"deadline"`
	Category      string    `json:"category"`
}

// Progress returns the completion percentage, capped at 100.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount * 100
	if p > 100 {
		return 100
	}
	return p
}

// Completed reports whether the goal has been reached.
func (g *Goal) Completed() bool {
	return g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount
}

// DaysLeft returns whole days until the deadline, negative when overdue.
func (g *Goal) DaysLeft(now time.Time) int {
	return int(g.Deadline.Sub(now).Hours() / 24)
}
