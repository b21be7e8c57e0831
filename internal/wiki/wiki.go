// Package wiki provides the context of a wiki migration: the root path of
// the translated page, link target resolution, and anchor slugs.
package wiki

import (
	"strings"
	"unicode"
)

// Context describes the page that is being translated. Root is the absolute
// path of the page in the new page tree, e.g. "/src/SomePage". Depth is the
// nesting depth of the page below the wiki root.
type Context struct {
	Root      string
	Depth     int
	rootParts []string
}

// NewContext creates a context for a page with the given root path.
func NewContext(root string, depth int) *Context {
	return &Context{
		Root:      root,
		Depth:     depth,
		rootParts: strings.Split(strings.TrimPrefix(root, "/"), "/"),
	}
}

// PagePath resolves a wiki page reference to the path of its new location.
// Sub-page references start with "/", page-relative references with "../",
// everything else is relative to the first element of the root path. The
// empty reference names the page itself.
func (ctx *Context) PagePath(page string) string {
	switch {
	case page == "":
		return ctx.Root
	case strings.HasPrefix(page, "/"):
		return ctx.Root + page
	case strings.HasPrefix(page, "../"):
		return ctx.peelBack(page)
	default:
		return "/" + ctx.rootParts[0] + "/" + page
	}
}

// peelBack resolves a "../" reference. The first "../" only moves from the
// page to its directory, every further one removes a path element.
func (ctx *Context) peelBack(ref string) string {
	base := ctx.Root
	if up := strings.Count(ref, "../") - 1; up > 0 {
		keep := max(len(ctx.rootParts)-up, 0)
		base = "/" + strings.Join(ctx.rootParts[:keep], "/")
	}
	return base + "/" + strings.ReplaceAll(ref, "../", "")
}

// ImagePath resolves an image reference to the path of the image file in
// the new tree. Unlike page references, a reference without any "/" names a
// file attached to the page itself.
func (ctx *Context) ImagePath(path string) string {
	switch {
	case !strings.Contains(path, "/"):
		return ctx.Root + "/" + path
	case strings.HasPrefix(path, "/"):
		return ctx.Root + path
	case strings.HasPrefix(path, "../"):
		return ctx.peelBack(path)
	default:
		return "/" + ctx.rootParts[0] + "/" + path
	}
}

// Slug transforms an anchor name into the fragment GitHub derives from a
// heading: lower case, punctuation removed, spaces replaced by "-".
func Slug(anchor string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(anchor) {
		switch {
		case r == ' ':
			sb.WriteByte('-')
		case r == '-' || r == '_':
			sb.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
