package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.Define("-n", Func(func(n int, name *string) {}).Desc("N"))
	executor.PrintUsage()

	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	usage := buf.String()
	for _, want := range []string{
		"-h (help, -help, --help)\tprint this usage\n",
		"foo\tFOO\n",
		"  bar\tBAR\n",
		"  baz\tBAZ\n",
		"    qux\tQUX\n",
		"-n <int> [string]\tN\n",
	} {
		if !strings.Contains(usage, want) {
			t.Fatalf("got %s", usage)
		}
	}
	if strings.Contains(usage, "\nhelp") {
		t.Fatalf("got %s", usage)
	}
}
