// Package templates loads the banner and page HTML files served by bannergen.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Page files served as-is.
const (
	AppPage     = "app.html"
	LandingPage = "landing.html"
)

//go:embed files/*.html
var embedded embed.FS

// LoadError reports that a template file could not be read.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("template %s not found: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader returns the contents of a template file by name.
type Loader interface {
	Load(name string) (string, error)
}

// FSLoader reads templates from a filesystem on every call, so edits on disk
// show up without a restart.
type FSLoader struct {
	fsys fs.FS
}

// Embedded serves the templates compiled into the binary.
func Embedded() *FSLoader {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(err)
	}
	return &FSLoader{fsys: sub}
}

// Dir serves templates from dir. An empty dir falls back to the embedded set.
func Dir(dir string) *FSLoader {
	if strings.TrimSpace(dir) == "" {
		return Embedded()
	}
	return &FSLoader{fsys: os.DirFS(filepath.Clean(dir))}
}

func (l *FSLoader) Load(name string) (string, error) {
	clean := path.Clean(name)
	if !fs.ValidPath(clean) || clean != name {
		return "", &LoadError{Name: name, Err: errors.New("invalid template name")}
	}
	b, err := fs.ReadFile(l.fsys, clean)
	if err != nil {
		return "", &LoadError{Name: name, Err: err}
	}
	return string(b), nil
}
