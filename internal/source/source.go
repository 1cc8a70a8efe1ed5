// Package source abstracts where input text comes from so the CLI and
// tests can feed the lexer from files or in-memory strings through the
// same interface.
package source

import (
	"context"
	"os"
	"path/filepath"

	"github.com/lexgram/lexgram/internal/exc"
)

// File is one unit of input text, addressed by a URI.
type File interface {
	Path(ctx context.Context) string
	Text(ctx context.Context) (string, error)
}

// Loader resolves URIs to files.
type Loader interface {
	Open(ctx context.Context, uri string) (File, error)
}

// NewFileString wraps static string content in File.
func NewFileString(path string, content string) File {
	return &fileString{path: path, content: content}
}

type fileString struct {
	path    string
	content string
}

func (f *fileString) Path(ctx context.Context) string {
	return f.path
}

func (f *fileString) Text(ctx context.Context) (string, error) {
	return f.content, nil
}

// NewLoaderLocal returns a loader that resolves URIs relative to root
// on the local file system. An empty root resolves against the working
// directory.
func NewLoaderLocal(root string) Loader {
	return &loaderLocal{root: root}
}

type loaderLocal struct {
	root string
}

func (l *loaderLocal) Open(ctx context.Context, uri string) (File, error) {
	path := uri
	if l.root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, exc.Wrap(exc.Location{URI: uri}, exc.CodeFileNotFound, err)
	}
	return NewFileString(uri, string(content)), nil
}

// LoaderMulti is an ordered set of loaders tried in order.
type LoaderMulti []Loader

func (l LoaderMulti) Open(ctx context.Context, uri string) (File, error) {
	for _, loader := range l {
		file, err := loader.Open(ctx, uri)
		if err != nil {
			continue
		}
		return file, nil
	}
	return nil, exc.Newf(exc.Location{URI: uri}, exc.CodeFileNotFound, "could not open %s from any loader", uri)
}
