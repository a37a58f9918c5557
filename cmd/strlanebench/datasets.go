package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// dataset builds a synthetic buffer of the requested size.
type dataset struct {
	name string
	fill func(b []byte)
}

var datasets = []dataset{
	{"lower", func(b []byte) {
		for i := range b {
			b[i] = 'a' + byte(i%26)
		}
	}},
	{"upper", func(b []byte) {
		for i := range b {
			b[i] = 'A' + byte(i%26)
		}
	}},
	{"mixed", func(b []byte) {
		for i := range b {
			if i%2 == 0 {
				b[i] = 'A' + byte(i%26)
			} else {
				b[i] = 'a' + byte(i%26)
			}
		}
	}},
	{"text", repeat("The quick brown fox jumps over the lazy dog. ")},
	{"utf8", repeat("Grüße, 世界! Ünïcödé 🙂 text. ")},
	{"latin1", repeat(mustLatin1("Grüße aus Köln, señor. Ça va? "))},
}

// mustLatin1 encodes s as ISO 8859-1: legacy 8-bit text that is not valid
// UTF-8 but that case conversion must leave intact.
func mustLatin1(s string) string {
	enc, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		panic(err)
	}
	return enc
}

// repeat fills b with copies of sample. The last copy may be cut short, so
// the utf8 dataset can end in the middle of a rune.
func repeat(sample string) func(b []byte) {
	return func(b []byte) {
		for i := 0; i < len(b); i += copy(b[i:], sample) {
		}
	}
}

func (d dataset) build(size int) []byte {
	b := make([]byte, size)
	d.fill(b)
	return b
}

func datasetNames() []string {
	names := make([]string, len(datasets))
	for i, d := range datasets {
		names[i] = d.name
	}
	return names
}

func lookupDatasets(list string) ([]dataset, error) {
	if list == "all" {
		return datasets, nil
	}

	var out []dataset
next:
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		for _, d := range datasets {
			if d.name == name {
				out = append(out, d)
				continue next
			}
		}
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
	return out, nil
}
