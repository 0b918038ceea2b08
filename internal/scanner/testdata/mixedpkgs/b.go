package beta

func B() {}
