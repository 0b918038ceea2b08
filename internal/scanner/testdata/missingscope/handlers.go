package missingscope

//routegen:get "/search"
func SearchOrders() {}
