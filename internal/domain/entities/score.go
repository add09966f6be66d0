package entities

// ScoreRecord tracks a user's cumulative quiz results for the process
// lifetime. Correct never exceeds Total; both only grow.
type ScoreRecord struct {
	Correct int
	Total   int
}
