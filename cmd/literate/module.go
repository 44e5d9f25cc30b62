package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/literate/debugs"
	"github.com/reusee/literate/litconfigs"
	"github.com/reusee/literate/outputs"
	"github.com/reusee/literate/sources"
	"github.com/reusee/literate/weaves"
)

type Module struct {
	dscope.Module
	Weaves  weaves.Module
	Outputs outputs.Module
	Sources sources.Module
	Debugs  debugs.Module
	Configs litconfigs.Module
}
