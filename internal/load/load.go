// Copyright 2024 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package load reads metadata graphs from files, URLs and streams.
package load

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/json"
	_ "github.com/cayleygraph/quad/nquads"
	"github.com/piprate/json-gold/ld"

	"github.com/cayleygraph/catalogqa/clog"
	"github.com/cayleygraph/catalogqa/graph"
)

// Supported format names.
const (
	FormatNQuads = "nquads"
	FormatJSON   = "json"
	FormatJSONLD = "jsonld"
	FormatTurtle = "turtle"
)

// Formats lists the supported format names.
func Formats() []string {
	return []string{FormatNQuads, FormatJSON, FormatJSONLD, FormatTurtle}
}

// FormatError is returned for an unknown format name, or when no format
// can be detected from a path.
type FormatError struct {
	Format string
	Path   string
}

func (e *FormatError) Error() string {
	known := strings.Join(Formats(), ", ")
	if e.Format == "" {
		return fmt.Sprintf("cannot detect the format of %q: expected one of %s", e.Path, known)
	}
	return fmt.Sprintf("unknown format %q: expected one of %s", e.Format, known)
}

var compressedExt = []string{".gz", ".bz2"}

// DetectFormat guesses the format of a file from its extension. A trailing
// compression extension is skipped, so "catalog.nt.gz" is N-Quads.
func DetectFormat(path string) (string, error) {
	name := strings.ToLower(path)
	for _, ext := range compressedExt {
		name = strings.TrimSuffix(name, ext)
	}
	ext := filepath.Ext(name)
	switch ext {
	case ".jsonld":
		return FormatJSONLD, nil
	case ".ttl":
		return FormatTurtle, nil
	case "":
		return "", &FormatError{Path: path}
	}
	if f := quad.FormatByExt(ext); f != nil && f.Reader != nil {
		return f.Name, nil
	}
	return "", &FormatError{Path: path}
}

// Loader reads graphs. The zero value is ready to use.
type Loader struct {
	// Client fetches http(s) inputs and remote JSON-LD contexts.
	// http.DefaultClient is used if nil.
	Client *http.Client
	// Batch is the number of quads decoded at once; quad.DefaultBatch if zero.
	Batch int

	once sync.Once
	docs ld.DocumentLoader
}

var defaultLoader Loader

// File reads the graph at path with the default loader.
func File(path, format string) (*graph.Graph, error) {
	return defaultLoader.File(path, format)
}

// Reader decodes a graph from r with the default loader.
func Reader(r io.Reader, format string) (*graph.Graph, error) {
	return defaultLoader.Reader(r, format)
}

func (l *Loader) client() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return http.DefaultClient
}

// File reads the graph at path, which is a local file or an http(s) URL.
// The format is detected from the path if empty.
func (l *Loader) File(path, format string) (*graph.Graph, error) {
	if path == "" {
		return nil, fmt.Errorf("load: empty path")
	}
	rc, name, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	if format == "" {
		if format, err = DetectFormat(name); err != nil {
			return nil, err
		}
	}
	g, err := l.Reader(rc, format)
	if err != nil {
		return nil, fmt.Errorf("could not load %q: %w", path, err)
	}
	clog.Infof("loaded %d triples from %s", g.Size(), path)
	return g, nil
}

// open returns the content at path and the name to detect its format from.
func (l *Loader) open(path string) (io.ReadCloser, string, error) {
	u, err := url.Parse(path)
	if err != nil || u.Scheme == "file" || u.Scheme == "" || len(u.Scheme) == 1 {
		// Don't alter relative URL path or non-URL path parameter.
		if err == nil && u.Scheme == "file" {
			// Recovery heuristic for mistyping "file://path/to/file".
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("could not open file %q: %w", path, err)
		}
		return f, path, nil
	}
	res, err := l.client().Get(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not get resource <%s>: %w", u, err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, "", fmt.Errorf("could not get resource <%s>: %s", u, res.Status)
	}
	return res.Body, u.Path, nil
}

// Reader decodes a graph in the given format from r, which may be gzip or
// bzip2 compressed. Quad labels are dropped. An empty stream is an empty
// graph.
func (l *Loader) Reader(r io.Reader, format string) (*graph.Graph, error) {
	g := graph.New()
	r, err := Decompress(r)
	if err == io.EOF {
		return g, nil
	} else if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSONLD:
		if err := l.readJSONLD(g, r); err != nil {
			return nil, err
		}
		return g, nil
	case FormatTurtle:
		if err := readTurtle(g, r); err != nil {
			return nil, err
		}
		return g, nil
	}
	f := quad.FormatByName(format)
	if f == nil || f.Reader == nil {
		return nil, &FormatError{Format: format}
	}
	qr := f.Reader(r)
	defer qr.Close()
	if _, err := quad.CopyBatch(&batchLogger{BatchWriter: g}, qr, l.Batch); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", format, err)
	}
	return g, nil
}

type batchLogger struct {
	cnt int
	quad.BatchWriter
}

func (w *batchLogger) WriteQuads(quads []quad.Quad) (int, error) {
	n, err := w.BatchWriter.WriteQuads(quads)
	if clog.V(2) {
		w.cnt += n
		clog.Infof("Read %d quads.", w.cnt)
	}
	return n, err
}
