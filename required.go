package ruledoc

func requiredEffect(_ []string, _ *Reducer) change {
	return change{required: true}
}
