package types

// Validity is the result of a pre-generation check.
type Validity struct {
	OK       bool
	Messages []string
}

// Valid returns a passing result without messages.
func Valid() Validity {
	return Validity{OK: true}
}

// Invalid returns a failing result carrying the supplied messages.
func Invalid(messages ...string) Validity {
	return Validity{OK: false, Messages: messages}
}

// And combines two results: OK is the logical AND, messages of v come first.
func (v Validity) And(other Validity) Validity {
	messages := make([]string, 0, len(v.Messages)+len(other.Messages))
	messages = append(messages, v.Messages...)
	messages = append(messages, other.Messages...)
	return Validity{OK: v.OK && other.OK, Messages: messages}
}
