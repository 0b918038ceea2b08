package generated

// Live answers liveness checks.
//
//routegen:register "/live"
//routegen:get ""
func Live() {}
