package valid

//routegen:register "/test-only"
//routegen:get "/x"
func TestOnlyHandler() {}
