package cmd

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"moinmd.de/m/internal/encoder"
	"moinmd.de/m/internal/logging"
	"moinmd.de/m/internal/translate"
)

// ---------- Subcommand: dir ------------------------------------------------

// pageExt is the file extension of the wiki pages in the source tree.
const pageExt = ".moin"

func cmdDir(fs *flag.FlagSet) (int, error) {
	ts, err := newTreeSettings(fs)
	if err != nil {
		return 2, err
	}
	done, failed := ts.translateTree()
	fmt.Printf("%d pages translated, %d failed\n", done, failed)
	if failed > 0 {
		return 1, nil
	}
	return 0, nil
}

// treeSettings holds the settings of the commands that translate a whole
// page tree.
type treeSettings struct {
	srcDir   string
	dstDir   string
	root     string
	encoding encoder.Encoding
}

func newTreeSettings(fs *flag.FlagSet) (*treeSettings, error) {
	encName := fs.Lookup("t").Value.String()
	enc := encoder.ParseEncoding(encName)
	if enc == encoder.EncodingUnknown {
		return nil, fmt.Errorf("unknown format %q", encName)
	}
	args := fs.Args()
	if len(args) != 2 {
		return nil, fmt.Errorf("expected source and destination directory, got %v", args)
	}
	return &treeSettings{
		srcDir:   args[0],
		dstDir:   args[1],
		root:     fs.Lookup("root").Value.String(),
		encoding: enc,
	}, nil
}

// translateTree translates every wiki page below the source directory. A page
// that fails to translate is reported and skipped, the rest of the tree is
// still translated.
func (ts *treeSettings) translateTree() (done, failed int) {
	err := filepath.WalkDir(ts.srcDir, func(srcName string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(srcName, pageExt) {
			return nil
		}
		if err = ts.translatePage(srcName); err != nil {
			slog.Error("translate page", "page", srcName, logging.Err(err))
			failed++
			return nil
		}
		done++
		return nil
	})
	if err != nil {
		slog.Error("walk source tree", "dir", ts.srcDir, logging.Err(err))
		failed++
	}
	return done, failed
}

// translatePage translates one wiki page file. The page "Sub/Page.moin"
// becomes "Sub/Page/index.md" below the destination directory.
func (ts *treeSettings) translatePage(srcName string) error {
	rel, err := filepath.Rel(ts.srcDir, srcName)
	if err != nil {
		return err
	}
	pageName := filepath.ToSlash(strings.TrimSuffix(rel, pageExt))
	dstName := filepath.Join(ts.dstDir, filepath.FromSlash(pageName), "index.md")
	if err = os.MkdirAll(filepath.Dir(dstName), 0o755); err != nil {
		return err
	}
	tr := translate.New(
		path.Join(ts.root, pageName), strings.Count(pageName, "/")+1, ts.encoding)
	if err = tr.TranslateFile(srcName, dstName); err != nil {
		return err
	}
	logging.LogTrace(slog.Default(), "page translated", "page", pageName)
	return nil
}
