package outputs

import (
	"path/filepath"
	"strings"

	"github.com/reusee/literate/cmds"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/vars"
)

type WriteOptions struct {
	HTML bool
}

var htmlFlag *bool

func init() {
	cmds.Define("-html", cmds.Func(func() {
		v := true
		htmlFlag = &v
	}).Desc("write the html page"))
	cmds.Define("!-html", cmds.Func(func() {
		v := false
		htmlFlag = &v
	}).Desc("do not write the html page"))
}

func (Module) WriteOptions(
	loader configs.Loader,
) WriteOptions {
	html := true
	if v := configs.First[*bool](loader, "html"); v != nil {
		html = *v
	}
	if htmlFlag != nil {
		html = *htmlFlag
	}
	return WriteOptions{
		HTML: html,
	}
}

var outFlag = cmds.Var[string]("-out")

// OutputDir picks the output directory of a script, from the flag, then
// config, then next to the script.
type OutputDir func(script string) string

func (Module) OutputDir(
	loader configs.Loader,
) OutputDir {
	return func(script string) string {
		return vars.FirstNonZero(
			*outFlag,
			configs.First[string](loader, "output_dir"),
			DefaultDir(script),
		)
	}
}

func DefaultDir(script string) string {
	return filepath.Join(filepath.Dir(script), "compiled_"+filepath.Base(script))
}

// Base is the file name of script without its extension.
func Base(script string) string {
	base := filepath.Base(script)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "report"
	}
	return base
}
