package core

// IsBlank reports whether the message consists entirely of blank
// characters: horizontal tab, line feed, vertical tab, form feed,
// carriage return and space. The empty string is blank. The scan is
// iterative, so pathological message lengths cannot exhaust the stack.
func IsBlank(msg string) bool {
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if !(('\t' <= c && c <= '\r') || c == ' ') {
			return false
		}
	}
	return true
}

// HasLeadingNewline reports whether the message starts with a line feed
func HasLeadingNewline(msg string) bool {
	return len(msg) > 0 && msg[0] == '\n'
}
