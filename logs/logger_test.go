package logs

import (
	"os"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/literate/modes"
)

func TestHandler(t *testing.T) {
	dscope.New(modes.ForTest(t), new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestProductionWriter(t *testing.T) {
	dscope.New(modes.ForProduction(), new(Module)).Call(func(
		w Writer,
	) {
		if w != Writer(os.Stderr) {
			t.Fatalf("got %T", w)
		}
	})
}
