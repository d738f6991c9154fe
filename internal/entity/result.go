package entity

import "time"

// Result is the outcome of a finished match, as kept on the scoreboard.
type Result struct {
	Winner     string    `json:"winner"`
	Loser      string    `json:"loser"`
	Stacks     int       `json:"stacks"`
	Turns      int       `json:"turns"`
	FinishedAt time.Time `json:"finished_at"`
}
