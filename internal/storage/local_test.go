package storage

import (
	"testing"

	"ugel-backend/pkg/apperror"
)

func TestValidateExtension(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		allowed  []string
		wantErr  bool
	}{
		{"pdf permitido", "solicitud.pdf", []string{".pdf"}, false},
		{"mayusculas", "SOLICITUD.PDF", []string{".pdf"}, false},
		{"docx rechazado en lista pdf", "solicitud.docx", []string{".pdf"}, true},
		{"docx permitido en lista general", "oficio.docx", DefaultExtensions, false},
		{"ejecutable rechazado", "virus.exe", DefaultExtensions, true},
		{"sin extension", "archivo", DefaultExtensions, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateExtension(tc.filename, tc.allowed)
			if tc.wantErr {
				if _, ok := apperror.AsValidation(err); !ok {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRemoveIgnoresForeignURLs(t *testing.T) {
	l := NewLocal(t.TempDir(), 0)

	// URLs outside /uploads and traversal attempts are no-ops
	if err := l.Remove("https://example.com/x.pdf"); err != nil {
		t.Fatalf("foreign URL should be ignored: %v", err)
	}
	if err := l.Remove("/uploads/../../etc/passwd"); err != nil {
		t.Fatalf("traversal should be ignored: %v", err)
	}
	// Already-missing files are not an error
	if err := l.Remove("/uploads/tramites/desaparecido.pdf"); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
}

func TestFilePath(t *testing.T) {
	l := NewLocal("/var/data/uploads", 0)

	if _, ok := l.FilePath("https://example.com/x.pdf"); ok {
		t.Fatal("foreign URL must not resolve")
	}
	if _, ok := l.FilePath("/uploads/../secreto"); ok {
		t.Fatal("traversal must not resolve")
	}

	path, ok := l.FilePath("/uploads/documentos/abc.pdf")
	if !ok {
		t.Fatal("stored URL should resolve")
	}
	if path == "" {
		t.Fatal("empty path")
	}
}
