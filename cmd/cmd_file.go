package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/renameio"

	"moinmd.de/m/internal/encoder"
	"moinmd.de/m/internal/translate"
)

// ---------- Subcommand: file -----------------------------------------------

func cmdFile(fs *flag.FlagSet) (int, error) {
	encName := fs.Lookup("t").Value.String()
	enc := encoder.ParseEncoding(encName)
	if enc == encoder.EncodingUnknown {
		fmt.Fprintf(os.Stderr, "Unknown format %q\n", encName)
		return 2, nil
	}
	depth, err := strconv.Atoi(fs.Lookup("depth").Value.String())
	if err != nil {
		return 2, err
	}
	src, err := getInput(fs.Args())
	if err != nil {
		return 2, err
	}
	tr := translate.New(fs.Lookup("root").Value.String(), depth, enc)
	data, err := tr.Translate(src)
	if err != nil {
		return 2, err
	}
	if outName := fs.Lookup("o").Value.String(); outName != "" {
		if err = renameio.WriteFile(outName, data, 0o644); err != nil {
			return 2, err
		}
		return 0, nil
	}
	if _, err = os.Stdout.Write(data); err != nil {
		return 2, err
	}
	return 0, nil
}

func getInput(args []string) ([]byte, error) {
	if len(args) < 1 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
