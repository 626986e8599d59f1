package vtext

import "fmt"

const sgrReset = "\x1b[0m"

func sgr(code int, s string) string {
	return fmt.Sprintf("\x1b[%dm%s%s", code, s, sgrReset)
}

// SGR style wrappers. Each returns s bracketed by the named display
// attribute and a reset.

func Bold(s string) string      { return sgr(1, s) }
func Dim(s string) string       { return sgr(2, s) }
func Italic(s string) string    { return sgr(3, s) }
func Underline(s string) string { return sgr(4, s) }
func Reverse(s string) string   { return sgr(7, s) }

func Black(s string) string   { return sgr(30, s) }
func Red(s string) string     { return sgr(31, s) }
func Green(s string) string   { return sgr(32, s) }
func Yellow(s string) string  { return sgr(33, s) }
func Blue(s string) string    { return sgr(34, s) }
func Magenta(s string) string { return sgr(35, s) }
func Cyan(s string) string    { return sgr(36, s) }
func White(s string) string   { return sgr(37, s) }
