package ruledoc

// Primitive types add no description.

func booleanEffect(_ []string, r *Reducer) change {
	return change{typ: TypeBoolean, value: Some(r.synth.Boolean())}
}

func stringEffect(_ []string, r *Reducer) change {
	return change{typ: TypeString, value: Some(DummyValue(r.synth, TypeString))}
}

func integerEffect(_ []string, r *Reducer) change {
	return change{typ: TypeInteger, value: Some(DummyValue(r.synth, TypeInteger))}
}

func numericEffect(_ []string, r *Reducer) change {
	return change{typ: TypeNumber, value: Some(DummyValue(r.synth, TypeNumber))}
}

func arrayEffect(_ []string, r *Reducer) change {
	return change{typ: TypeArray, value: Some([]string{r.synth.String(TypeString)})}
}

func fileEffect(_ []string, _ *Reducer) change {
	return change{typ: TypeFile}
}

func imageEffect(_ []string, _ *Reducer) change {
	return change{typ: TypeFile, fragment: "The value must be an image."}
}
