package cmds

// Var defines name to set a value and name+"." to reset it.
func Var[T any](name string, desc ...string) *T {
	var value T

	// set
	Define(name, withDesc(Func(func(v T) {
		value = v
	}), desc))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to set true and "!"+name to set false.
func Switch(name string, desc ...string) *bool {
	var value bool

	// set true
	Define(name, withDesc(Func(func() {
		value = true
	}), desc))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}

// Collect defines name to append to a list.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	// append
	Define(name, withDesc(Func(func(v T) {
		value = append(value, v)
	}), desc))
	return &value
}

func withDesc(command *Command, desc []string) *Command {
	if len(desc) > 0 {
		command.Desc(desc[0])
	}
	return command
}
