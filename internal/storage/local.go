// Package storage implements the upload collaborator: files are validated
// (type allow-list, size cap) and written to local disk under a per-concern
// subdirectory, then served statically from /uploads.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"ugel-backend/pkg/apperror"

	"github.com/google/uuid"
)

const urlPrefix = "/uploads"

// DefaultMaxSize caps uploads at 10 MiB unless configured otherwise
const DefaultMaxSize = 10 << 20

// Extensions accepted for general documents; trámite intakes pass a
// PDF-only list instead.
var DefaultExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".jpg", ".jpeg", ".png"}

// Stored describes a persisted upload
type Stored struct {
	URL     string
	Nombre  string
	Tamanio int64
}

// Local stores uploads on the local filesystem
type Local struct {
	basePath string
	maxSize  int64
}

// NewLocal returns a Local rooted at basePath. maxSize <= 0 applies the default cap.
func NewLocal(basePath string, maxSize int64) *Local {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Local{basePath: basePath, maxSize: maxSize}
}

// ValidateExtension checks the file name against the allowed extension list
func ValidateExtension(filename string, allowed []string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return apperror.NewValidation("archivo",
		fmt.Sprintf("tipo de archivo no permitido (%s); se aceptan: %s", ext, strings.Join(allowed, ", ")))
}

// Save validates and persists an uploaded file into the given subdirectory,
// keeping the original extension under a fresh uuid name. Returns the public
// URL, the original filename and the size in bytes.
func (l *Local) Save(file *multipart.FileHeader, subdir string, allowed []string) (*Stored, error) {
	if len(allowed) == 0 {
		allowed = DefaultExtensions
	}
	if err := ValidateExtension(file.Filename, allowed); err != nil {
		return nil, err
	}
	if file.Size > l.maxSize {
		return nil, apperror.NewValidation("archivo",
			fmt.Sprintf("el archivo excede el tamaño máximo permitido (%d MB)", l.maxSize>>20))
	}

	dir := filepath.Join(l.basePath, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creando directorio de subida: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error abriendo archivo subido: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("error guardando archivo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("error escribiendo archivo: %w", err)
	}

	return &Stored{
		URL:     path.Join(urlPrefix, subdir, name),
		Nombre:  file.Filename,
		Tamanio: file.Size,
	}, nil
}

// Remove deletes a previously stored file given its public URL. Unknown URLs
// and already-missing files are not errors.
func (l *Local) Remove(url string) error {
	rel, ok := strings.CutPrefix(url, urlPrefix+"/")
	if !ok || strings.Contains(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(l.basePath, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FilePath maps a stored URL back to its path on disk (used for downloads)
func (l *Local) FilePath(url string) (string, bool) {
	rel, ok := strings.CutPrefix(url, urlPrefix+"/")
	if !ok || strings.Contains(rel, "..") {
		return "", false
	}
	return filepath.Join(l.basePath, filepath.FromSlash(rel)), true
}
