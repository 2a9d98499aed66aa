package logger

import (
	"os"

	"golang.org/x/term"
)

// styles maps a style name to its start and end escape sequences.
var styles = map[string][2]string{
	"bold":      {"\033[1m", "\033[22m"},
	"dim":       {"\033[2m", "\033[22m"},
	"italic":    {"\033[3m", "\033[23m"},
	"underline": {"\033[4m", "\033[24m"},
	"inverse":   {"\033[7m", "\033[27m"},
	"black":     {"\033[30m", "\033[39m"},
	"red":       {"\033[31m", "\033[39m"},
	"green":     {"\033[32m", "\033[39m"},
	"yellow":    {"\033[33m", "\033[39m"},
	"blue":      {"\033[34m", "\033[39m"},
	"magenta":   {"\033[35m", "\033[39m"},
	"cyan":      {"\033[36m", "\033[39m"},
	"white":     {"\033[37m", "\033[39m"},
	"gray":      {"\033[90m", "\033[39m"},
	"grey":      {"\033[90m", "\033[39m"},
}

// interactive is decided once: colour output only makes sense when stderr is a terminal.
var interactive = isTerminal(os.Stderr)

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Interactive reports whether the process was started attached to a terminal.
func Interactive() bool {
	return interactive
}

// StyleCodes returns the start and end sequences for a style name.
// ok is false for unknown or empty names.
func StyleCodes(name string) (start, end string, ok bool) {
	codes, ok := styles[name]
	if !ok {
		return "", "", false
	}
	return codes[0], codes[1], true
}

// Style wraps s with the named style. Unknown names leave s untouched.
func Style(name, s string) string {
	start, end, ok := StyleCodes(name)
	if !ok {
		return s
	}
	return start + s + end
}
