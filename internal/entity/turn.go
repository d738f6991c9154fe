package entity

// Turn describes one declared move: remove Matches matches from stack Stack
// (0-indexed). Produced fresh each turn, no identity.
type Turn struct {
	Stack   int `json:"stack"`
	Matches int `json:"matches"`
}
