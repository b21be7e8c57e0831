package tests

// Feed the translator with unusual strings that often crash software. The
// translation may fail with an error, but it must never panic and never
// produce output for a failed page.

import (
	"strings"
	"testing"

	"moinmd.de/m/internal/encoder"
	"moinmd.de/m/internal/translate"
)

var naughtyStrings = []string{
	"",
	"\n",
	"\x00",
	"\xff\xfe",
	"undefined",
	"ÅÍÎÏ˝ÓÔÒÚÆ☃",
	"表ポあA鷗ŒéＢ逍Üßªąñ丂㐀𠀀",
	"社會科學院語學研究所",
	"å›¥å…¥ã‚Œè©¦é¨“",
	"Ω≈ç√∫˜µ≤≥÷",
	"<script>alert(0)</script>",
	"<<<<<<<<<<",
	"||||||||||",
	"[[[[[[[[[[",
	"]]]]]]]]]]",
	"{{{{{{{{{{",
	"}}}}}}}}}}",
	"'''''''''''''''",
	"__''__''__",
	"~+~+~+~-~-",
	"<<BR>><<BR>><<BR>>",
	"[[attachment:]]",
	"[[|]]",
	"{{}}",
	"## ## ## ##",
	"--()--",
	"^^",
	strings.Repeat("= deep = \n", 100),
	strings.Repeat(" * item\n", 100),
	strings.Repeat("a", 10000),
}

func TestNaughtyStrings(t *testing.T) {
	t.Parallel()
	for _, enc := range encoder.GetEncodings() {
		tr := translate.New("", 0, enc)
		for _, s := range naughtyStrings {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("%v: panic on %q: %v", enc, s, r)
					}
				}()
				out, err := tr.Translate([]byte(s))
				if err != nil && out != nil {
					t.Errorf("%v: output despite error for %q", enc, s)
				}
			}()
		}
	}
}
