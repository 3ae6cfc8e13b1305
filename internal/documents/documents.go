// Package documents reads contract files from a local folder or an
// S3-compatible bucket and turns them into plain text for the analyzer.
package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// MaxBytes caps the size of a single document.
const MaxBytes = 5 << 20

var (
	ErrNotFound    = errors.New("document not found")
	ErrInvalidName = errors.New("invalid document name")
	ErrTooLarge    = errors.New("document too large")
)

// Info describes one document in a source.
type Info struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Source lists and opens documents by plain name. Open returns ErrNotFound
// (wrapped) for unknown names.
type Source interface {
	List(ctx context.Context) ([]Info, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// NewSource picks the bucket when an endpoint is configured and the local
// folder otherwise. It returns nil when neither is set.
func NewSource(dir string, bucket BucketConfig) (Source, error) {
	if bucket.Endpoint != "" {
		return NewBucket(bucket)
	}
	if dir != "" {
		return NewDir(dir), nil
	}
	return nil, nil
}

// ReadText opens name and returns its text as UTF-8. HTML documents are
// reduced to their visible text, one block element per line.
func ReadText(ctx context.Context, src Source, name string) (string, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxBytes {
		return "", fmt.Errorf("%w: %s is larger than %d bytes", ErrTooLarge, name, MaxBytes)
	}
	text, err := decodeText(data)
	if err != nil {
		return "", err
	}
	if IsHTML(name) {
		return HTMLText(strings.NewReader(text))
	}
	return text, nil
}

func IsHTML(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
