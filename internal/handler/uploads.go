package handler

import (
	"ugel-backend/internal/service"
	"ugel-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// formAdjunto stores an optional multipart file from the given field. A
// missing field yields (nil, nil); a present but invalid file is an error.
func formAdjunto(c *gin.Context, store *storage.Local, field, subdir string) (*service.ArchivoAdjunto, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	stored, err := store.Save(file, subdir, storage.DefaultExtensions)
	if err != nil {
		return nil, err
	}
	return &service.ArchivoAdjunto{URL: stored.URL, Nombre: stored.Nombre, Tamanio: stored.Tamanio}, nil
}
