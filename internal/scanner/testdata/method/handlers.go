package method

type Orders struct{}

// Recent lists the latest orders.
//
//routegen:register "/orders"
//routegen:get "/recent"
func (o *Orders) Recent() {}
