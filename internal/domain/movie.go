package domain

// Movie represents the canonical movie entity in the database/service.
type Movie struct {
	ID          int64
	Name        string
	Description string
	Popularity  int32
}
