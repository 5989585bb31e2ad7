package assert

// Assert panics with msg when the condition does not hold. Reserved for
// unrecoverable init-time failures.
func Assert(condition bool, msg string, other ...any) {
	if !condition {
		panic(msg)
	}
}

func AssertNil(value any, msg string, other ...any) {
	Assert(value == nil, msg, other...)
}
