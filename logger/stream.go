package logger

import "io"

// Stdout writes s to standard output as-is.
func Stdout(s string) error {
	_, err := io.WriteString(outStdout, s)
	return err
}

// Stderr writes s to standard error, in the error style when attached to a terminal.
func Stderr(s string) error {
	_, err := io.WriteString(outStderr, Colorize(s, ErrorLevel))
	return err
}

// Print interpolates args like Sprintf and writes the result to standard output.
func Print(args ...any) error {
	s, err := Sprintf(args...)
	if err != nil {
		return err
	}
	return Stdout(s)
}

// Puts is Print followed by a newline.
func Puts(args ...any) error {
	s, err := Sprintf(args...)
	if err != nil {
		return err
	}
	return Stdout(s + "\n")
}
