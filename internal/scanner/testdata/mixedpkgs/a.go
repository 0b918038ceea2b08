package alpha

func A() {}
