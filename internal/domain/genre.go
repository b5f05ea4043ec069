package domain

// Genre represents a movie genre entity.
type Genre struct {
	ID          int64
	Name        string
	Description string
	Popularity  int32
}
