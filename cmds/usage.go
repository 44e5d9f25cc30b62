package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}
		writeCommand(w, 0, name, command)
	}
}

func writeCommand(w io.Writer, depth int, name string, command *Command) {
	line := strings.Repeat("  ", depth) + name
	if params := command.Params(); params != "" {
		line += " " + params
	}
	if len(command.Aliases) > 0 {
		line += " (" + strings.Join(command.Aliases, ", ") + ")"
	}
	if command.Description != "" {
		line += "\t" + command.Description
	}
	fmt.Fprintln(w, line)
	for _, sub := range slices.Sorted(maps.Keys(command.Subs)) {
		if command.Subs[sub] == nil {
			continue
		}
		writeCommand(w, depth+1, sub, command.Subs[sub])
	}
}
