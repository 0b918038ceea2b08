package missingverb

//routegen:register "/orders"
func ListOrders() {}
