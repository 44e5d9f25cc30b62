package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

// Command is a named action on the command line. A command with a Func
// consumes one word per parameter. A command with Subs makes those names
// available to the words that follow it.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn as a command. fn may return nothing or an error, and its
// parameters must be of a kind getArg can parse. Pointer parameters are
// optional.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("%v: must return error", fnType))
		}
	default:
		panic(fmt.Errorf("%v: must return 0 or 1 value", fnType))
	}
	for i := range fnType.NumIn() {
		if !parsable(fnType.In(i)) {
			panic(fmt.Errorf("%v: unsupported parameter type %v", fnType, fnType.In(i)))
		}
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

// Params describes the parameters, like "<int> [string]".
func (c *Command) Params() string {
	if !c.Func.IsValid() {
		return ""
	}
	var params []string
	for i := range c.Func.Type().NumIn() {
		t := c.Func.Type().In(i)
		if t.Kind() == reflect.Pointer {
			params = append(params, "["+t.Elem().Kind().String()+"]")
		} else {
			params = append(params, "<"+t.Kind().String()+">")
		}
	}
	return strings.Join(params, " ")
}

func parsable(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
