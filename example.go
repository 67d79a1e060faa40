package ruledoc

// documentationEffect stages the author's description and example. An empty
// example slot means no explicit example.
func documentationEffect(args []string) change {
	doc := &documentation{}
	if len(args) > 0 {
		doc.description = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		doc.value = Some(args[1])
	}
	return change{document: doc}
}
