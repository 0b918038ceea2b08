package valid

// NearbyVenues lists venues close to the caller.
//
//routegen:register "/venues"
//routegen:get "/nearby"
func NearbyVenues() {}
