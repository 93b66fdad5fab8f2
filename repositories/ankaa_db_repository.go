package repositories

// AnkaaDbRepository groups all queries against the application database.
type AnkaaDbRepository struct{}

func NewAnkaaDbRepository() *AnkaaDbRepository {
	return &AnkaaDbRepository{}
}
