package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value, print each command once
	names := make(map[*Command][]string)
	for name, command := range commands {
		names[command] = append(names[command], name)
	}
	type entry struct {
		names   []string
		command *Command
	}
	var entries []entry
	for command, ns := range names {
		slices.Sort(ns)
		entries = append(entries, entry{
			names:   ns,
			command: command,
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		line := indent + strings.Join(e.names, ", ")
		if e.command != nil && e.command.Func.IsValid() {
			for i := 0; i < e.command.Func.Type().NumIn(); i++ {
				line += " <" + e.command.argName(i) + ">"
			}
		}
		if e.command != nil && e.command.Description != "" {
			line += "\t" + e.command.Description
		}
		fmt.Fprintln(w, line)
		if e.command != nil && len(e.command.Subs) > 0 {
			writeCommands(w, e.command.Subs, depth+1)
		}
	}
}
