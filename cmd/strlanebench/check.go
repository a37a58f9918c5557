package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mhr3/strlane/ascii"
	"github.com/mhr3/strlane/utf8"
)

type check struct {
	name string
	ok   func() bool
}

func converted(s string, c ascii.Case) string {
	b := []byte(s)
	ascii.ConvertCase(b, c)
	return string(b)
}

var checks = []check{
	{"upper basic", func() bool {
		return converted("Hello World! 123", ascii.Upper) == "HELLO WORLD! 123"
	}},
	{"lower basic", func() bool {
		return converted("HELLO WORLD! 123", ascii.Lower) == "hello world! 123"
	}},
	{"upper long string", func() bool {
		return converted("This is a very long string that should trigger SIMD processing", ascii.Upper) ==
			"THIS IS A VERY LONG STRING THAT SHOULD TRIGGER SIMD PROCESSING"
	}},
	{"upper empty", func() bool {
		return converted("", ascii.Upper) == ""
	}},
	{"upper leaves non-ASCII bytes", func() bool {
		return converted("Hello café", ascii.Upper) == "HELLO CAFé"
	}},
	{"upper leaves Latin-1 bytes", func() bool {
		return converted(mustLatin1("Grüße"), ascii.Upper) == mustLatin1("GRüßE")
	}},
	{"validate ASCII", func() bool {
		return utf8.ValidString("Hello World")
	}},
	{"validate empty", func() bool {
		return utf8.ValidString("")
	}},
	{"validate multi-byte", func() bool {
		return utf8.ValidString("Hello 世界")
	}},
	{"reject lone continuation", func() bool {
		return !utf8.ValidString("\x80")
	}},
	{"reject truncated sequence", func() bool {
		return !utf8.ValidString("\xe2")
	}},
	{"reject overlong", func() bool {
		return !utf8.ValidString("\xc0\x80")
	}},
	{"reject surrogate", func() bool {
		return !utf8.ValidString("\xed\xa0\x80")
	}},
	{"reject Latin-1 text", func() bool {
		return !utf8.ValidString(mustLatin1("Grüße aus Köln"))
	}},
	{"count ASCII", func() bool {
		return utf8.RuneCountString("Hello World") == 11
	}},
	{"count simple ASCII", func() bool {
		return utf8.RuneCountString("Hello") == 5
	}},
	{"count empty", func() bool {
		return utf8.RuneCountString("") == 0
	}},
	{"count multi-byte", func() bool {
		return utf8.RuneCountString("café") == 4 && utf8.RuneCountString("世界") == 2
	}},
}

// runChecks prints one PASS or FAIL line per check and returns the number
// of failures.
func runChecks(w io.Writer) (int, error) {
	var errs []error
	printLine := func(format string, args ...any) {
		if _, err := fmt.Fprintf(w, format+"\n", args...); err != nil {
			errs = append(errs, err)
		}
	}

	printLine("%s", header())
	failed := 0
	for _, c := range checks {
		if c.ok() {
			printLine("PASS: %s", c.name)
		} else {
			printLine("FAIL: %s", c.name)
			failed++
		}
	}
	if failed == 0 {
		printLine("all %d checks passed", len(checks))
	} else {
		printLine("%d of %d checks failed", failed, len(checks))
	}
	return failed, errors.Join(errs...)
}
