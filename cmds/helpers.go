package cmds

func Var[T any](name string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

func Switch(name string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

func Collect[T any](name string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}

// Args collects the words that name no command.
func Args() *[]string {
	var value []string
	GlobalExecutor.Fallback(func(arg string) error {
		value = append(value, arg)
		return nil
	})
	return &value
}

// Rest collects the arguments after "--".
func Rest() *[]string {
	var value []string
	GlobalExecutor.Rest(func(args []string) error {
		value = append(value, args...)
		return nil
	})
	return &value
}
