package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pkt.systems/helptext/internal/docspec"
)

const fetchTimeout = 30 * time.Second

var errEmptyInput = errors.New("empty input argument")

// inputSource is one document named on the command line.
type inputSource struct {
	name string
	// hint is the path whose extension selects the format when none is given.
	hint string
	open func() (io.ReadCloser, error)
}

// load opens and decodes the document. An empty format is detected from
// the source's extension; stdin without one is YAML.
func (s inputSource) load(format docspec.Format) (*docspec.Document, error) {
	if format == "" {
		if s.hint == "" {
			format = docspec.FormatYAML
		} else {
			detected, err := docspec.FormatFromPath(s.hint)
			if err != nil {
				return nil, err
			}
			format = detected
		}
	}
	rc, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return docspec.Read(rc, format)
}

func openInputs(args []string, stdin io.Reader) ([]inputSource, error) {
	if len(args) == 0 {
		return []inputSource{{
			name: "stdin",
			open: func() (io.ReadCloser, error) { return io.NopCloser(stdin), nil },
		}}, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw, stdin)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func makeInputSource(raw string, stdin io.Reader) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, errEmptyInput
	}
	if raw == "-" {
		return inputSource{
			name: "stdin",
			open: func() (io.ReadCloser, error) { return io.NopCloser(stdin), nil },
		}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, hint: u.Path, open: func() (io.ReadCloser, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{name: raw, hint: path, open: func() (io.ReadCloser, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, hint: raw, open: func() (io.ReadCloser, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return cancelOnClose{ReadCloser: resp.Body, cancel: cancel}, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// resolveOutput returns fallback for an empty path, otherwise a new file at
// path with its directory created.
func resolveOutput(path string, fallback io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return fallback, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
