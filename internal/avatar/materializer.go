package avatar

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	base64Marker    = "data:image"
	referencePrefix = "img"
)

var ErrMalformedDataURI = errors.New("malformed avatar data uri")

type materializer struct {
	dir string
}

// Materializer stores an application's avatar payload as the member's
// avatar file. ok is false when nothing was stored.
type Materializer interface {
	Materialize(payload *string, memberID int) (reference string, ok bool, err error)
}

func NewMaterializer(dir string) Materializer {
	return &materializer{dir: dir}
}

func FileName(memberID int) string {
	return fmt.Sprintf("avatar%d.png", memberID)
}

// DefaultReference is what a member without an uploaded avatar points to,
// whether or not the file exists.
func DefaultReference(memberID int) string {
	return path.Join(referencePrefix, FileName(memberID))
}

func (m *materializer) Materialize(payload *string, memberID int) (string, bool, error) {
	if payload == nil || *payload == "" {
		return "", false, nil
	}

	destination := filepath.Join(m.dir, FileName(memberID))

	if strings.HasPrefix(*payload, base64Marker) {
		if err := m.writeDataURI(*payload, destination); err != nil {
			return "", false, err
		}
		return DefaultReference(memberID), true, nil
	}

	copied, err := m.copyFile(*payload, destination)
	if err != nil || !copied {
		return "", false, err
	}

	return DefaultReference(memberID), true, nil
}

func (m *materializer) writeDataURI(payload, destination string) error {
	_, encoded, found := strings.Cut(payload, ",")
	if !found {
		return ErrMalformedDataURI
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode avatar: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create avatar dir: %w", err)
	}

	return os.WriteFile(destination, data, 0o644)
}

// copyFile copies source to destination keeping its mode and modification
// time. A missing source is not an error.
func (m *materializer) copyFile(source, destination string) (bool, error) {
	info, err := os.Stat(source)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create avatar dir: %w", err)
	}

	in, err := os.Open(source)
	if err != nil {
		return false, err
	}
	defer in.Close()

	out, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return false, err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return false, err
	}
	if err := out.Close(); err != nil {
		return false, err
	}

	if err := os.Chmod(destination, info.Mode().Perm()); err != nil {
		return false, err
	}

	return true, os.Chtimes(destination, info.ModTime(), info.ModTime())
}
