// Package encoder provides a generic interface to encode the abstract syntax
// tree of a wiki page into some text form.
package encoder

import (
	"io"

	"moinmd.de/m/internal/ast"
	"moinmd.de/m/internal/wiki"
)

// Encoder is an interface that allows to encode a parsed page.
type Encoder interface {
	// WriteDocument encodes a whole page and writes it to the Writer.
	WriteDocument(io.Writer, *ast.Document) error
}

// Encoding is an enumeration of the supported output formats.
type Encoding int

// Supported encodings.
const (
	EncodingUnknown Encoding = iota
	EncodingMarkdown
	EncodingHTML
	EncodingSz
)

// String returns the name of the encoding.
func (enc Encoding) String() string {
	switch enc {
	case EncodingMarkdown:
		return "markdown"
	case EncodingHTML:
		return "html"
	case EncodingSz:
		return "sz"
	}
	return "*unknown*"
}

// ParseEncoding returns the encoding with the given name.
func ParseEncoding(name string) Encoding {
	switch name {
	case "markdown", "md":
		return EncodingMarkdown
	case "html":
		return EncodingHTML
	case "sz":
		return EncodingSz
	}
	return EncodingUnknown
}

// Create builds a new encoder with the given options. It returns nil for an
// unknown encoding.
func Create(enc Encoding, params *CreateParameter) Encoder {
	switch enc {
	case EncodingMarkdown:
		return &pageEncoder{ctx: params.Context, matter: params.Matter}
	case EncodingHTML:
		return &pageEncoder{ctx: params.Context, matter: params.Matter, html: true}
	case EncodingSz:
		return &szEncoder{}
	}
	return nil
}

// CreateParameter contains values that are needed to create some encoder.
type CreateParameter struct {
	Context *wiki.Context    // resolves link targets
	Matter  wiki.FrontMatter // collects page metadata while encoding
}

// GetEncodings returns all registered encodings, ordered by encoding value.
func GetEncodings() []Encoding {
	return []Encoding{EncodingMarkdown, EncodingHTML, EncodingSz}
}
