// Package identity recovers the name of a submodule from its SubModule.xml.
//
// Names come from one of two places. The fast path takes the folder that
// encloses the identity file and cannot fail. When the identity file sits at
// the archive root there is no such folder, and the slow path reads the file
// and takes the value attribute of its Id element. Only the slow path does
// I/O and only it can fail, always with errors.ErrDataInvalid.
package identity

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/bannerkit/pkg/errors"
	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/arthur-debert/bannerkit/pkg/paths"
	"github.com/arthur-debert/bannerkit/pkg/types"
	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

const (
	idPath    = "//Id"
	idAttr    = "value"
	parseMsg  = "Failed to parse SubModule.xml file"
	formatMsg = "Unexpected SubModule.xml format"
)

// Source tells which branch produced a name
type Source string

const (
	// SourcePath means the name is the folder enclosing the identity file
	SourcePath Source = "path"
	// SourceDocument means the name was read from the identity file
	SourceDocument Source = "document"
)

// Resolution is the outcome of resolving one submodule's name
type Resolution struct {
	Name   string
	Source Source
	Err    error
}

// Resolver reads identity files relative to the directory an archive was
// unpacked into.
type Resolver struct {
	fs     types.FS
	root   string
	logger zerolog.Logger
}

// NewResolver creates a Resolver reading through fsys. Relative identity
// paths are joined onto root.
func NewResolver(fsys types.FS, root string) *Resolver {
	return &Resolver{
		fs:     fsys,
		root:   root,
		logger: logging.GetLogger("identity"),
	}
}

// Resolve names the submodule whose identity file is e.
func (r *Resolver) Resolve(e paths.Entry) Resolution {
	if name, ok := FromPath(e); ok {
		return Resolution{Name: name, Source: SourcePath}
	}

	name, err := r.FromDocument(e.Original)
	if err != nil {
		return Resolution{Source: SourceDocument, Err: err}
	}
	return Resolution{Name: name, Source: SourceDocument}
}

// FromPath returns the folder directly enclosing the identity file, if the
// entry has one.
func FromPath(e paths.Entry) (string, bool) {
	segments := paths.NonEmpty(e.Segments)
	if len(segments) < 2 {
		return "", false
	}
	return segments[len(segments)-2], true
}

// FromDocument reads the identity file and returns the value of its Id.
func (r *Resolver) FromDocument(identityPath string) (string, error) {
	full := identityPath
	if !filepath.IsAbs(full) {
		full = filepath.Join(r.root, identityPath)
	}

	r.logger.Debug().Str("path", full).Msg("Reading submodule identity")

	data, err := r.fs.ReadFile(full)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrDataInvalid, "failed to read identity file").
			WithDetail("path", identityPath)
	}

	return ParseModName(data, identityPath)
}

// ParseModName extracts the Id value from SubModule.xml content. path is
// only used for error details.
func ParseModName(data []byte, path string) (string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveDuplicateAttrs = true
	if err := doc.ReadFromBytes(data); err != nil {
		return "", errors.Wrap(err, errors.ErrDataInvalid, parseMsg).WithDetail("path", path)
	}
	if err := checkWellFormed(doc); err != nil {
		return "", errors.Wrap(err, errors.ErrDataInvalid, parseMsg).WithDetail("path", path)
	}

	id := doc.FindElement(idPath)
	if id == nil {
		return "", errors.New(errors.ErrDataInvalid, formatMsg).WithDetail("path", path)
	}

	attr := id.SelectAttr(idAttr)
	if attr == nil || attr.Value == "" {
		return "", errors.New(errors.ErrDataInvalid, formatMsg).WithDetail("path", path)
	}

	return attr.Value, nil
}

// checkWellFormed rejects what etree tolerates but XML forbids: anything
// other than a single root element, text outside it, and repeated
// attributes on one element.
func checkWellFormed(doc *etree.Document) error {
	if n := len(doc.ChildElements()); n != 1 {
		return fmt.Errorf("document has %d root elements", n)
	}
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && !cd.IsWhitespace() {
			return fmt.Errorf("text outside the root element: %q", cd.Data)
		}
	}
	for _, el := range append([]*etree.Element{doc.Root()}, doc.Root().FindElements(".//*")...) {
		seen := make(map[string]struct{}, len(el.Attr))
		for _, a := range el.Attr {
			key := a.Space + ":" + a.Key
			if _, dup := seen[key]; dup {
				return fmt.Errorf("attribute %q repeated on <%s>", a.Key, el.Tag)
			}
			seen[key] = struct{}{}
		}
	}
	return nil
}
