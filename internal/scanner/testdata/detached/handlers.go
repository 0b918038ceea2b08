package detached

//routegen:register "/orders"
//routegen:get "/recent"

func RecentOrders() {}
