// Package translate drives the translation of a single wiki page: parse the
// MoinMoin source, encode it, and frame the result with its front matter.
package translate

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/renameio"

	"moinmd.de/m/internal/encoder"
	"moinmd.de/m/internal/parser"
	"moinmd.de/m/internal/wiki"
)

// DefaultRoot is the root path used when no page path is given.
const DefaultRoot = "/src"

// Translator holds the settings for translating pages of one wiki.
type Translator struct {
	Root     string // path of the page in the new page tree
	Depth    int    // nesting depth of the page below the wiki root
	Encoding encoder.Encoding
}

// New creates a translator for the given page path and depth. An empty root
// selects the default root path, an unknown encoding the Markdown encoding.
func New(root string, depth int, enc encoder.Encoding) *Translator {
	if root == "" {
		root = DefaultRoot
	}
	if enc == encoder.EncodingUnknown {
		enc = encoder.EncodingMarkdown
	}
	return &Translator{Root: root, Depth: depth, Encoding: enc}
}

// Translate parses the wiki source and returns the encoded page, including
// its front matter.
func (tr *Translator) Translate(src []byte) ([]byte, error) {
	doc, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	matter := wiki.FrontMatter{}
	enc := encoder.Create(tr.Encoding, &encoder.CreateParameter{
		Context: wiki.NewContext(tr.Root, tr.Depth),
		Matter:  matter,
	})
	if enc == nil {
		return nil, fmt.Errorf("unknown encoding %v", tr.Encoding)
	}
	var body bytes.Buffer
	if err = enc.WriteDocument(&body, doc); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err = matter.Write(&out); err != nil {
		return nil, err
	}
	if _, err = out.Write(body.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// TranslateFile translates the wiki page srcName and writes the result to
// dstName. The destination is written atomically, a failed translation
// leaves no partial file behind.
func (tr *Translator) TranslateFile(srcName, dstName string) error {
	src, err := os.ReadFile(srcName)
	if err != nil {
		return err
	}
	data, err := tr.Translate(src)
	if err != nil {
		return fmt.Errorf("%s: %w", srcName, err)
	}
	return renameio.WriteFile(dstName, data, 0o644)
}
