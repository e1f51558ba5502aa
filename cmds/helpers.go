package cmds

// Var defines a value flag: name sets the value from the next
// argument, name+"." resets it to zero. The returned pointer reads the
// current value.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}))

	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))

	return &value
}

// Switch defines a boolean flag: name turns it on, "!"+name turns it
// off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}
