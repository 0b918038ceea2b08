package valid

// SearchEvents returns events matching the query string.
//
//routegen:register "/events"
//routegen:get "/search"
func SearchEvents() {}

// CreateEvent stores a new event at the scope root.
//
//routegen:register "/events"
//routegen:post ""
func CreateEvent() {}

// helper is not annotated and never registered.
func helper() {}

type eventStore struct{}

// Flush has a receiver, so it is not a registration candidate.
func (eventStore) Flush() {}
