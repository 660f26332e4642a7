package model

import (
	"time"

	"github.com/google/uuid"
)

// Documento categoria enum constants
const (
	DocDirectiva  = "DIRECTIVA"
	DocResolucion = "RESOLUCION"
	DocOficio     = "OFICIO"
	DocMemorando  = "MEMORANDO"
	DocInforme    = "INFORME"
	DocFormato    = "FORMATO"
	DocOtro       = "OTRO"
)

// Documento is a downloadable institutional document
type Documento struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Titulo         string    `gorm:"type:varchar(300);not null" json:"titulo"`
	Descripcion    string    `gorm:"type:varchar(500)" json:"descripcion"`
	Categoria      string    `gorm:"type:varchar(20);not null;default:'OTRO';index" json:"categoria"`
	ArchivoURL     string    `gorm:"type:varchar(500);not null" json:"archivoUrl"`
	ArchivoNombre  string    `gorm:"type:varchar(255);not null" json:"archivoNombre"`
	ArchivoTamanio int64     `json:"archivoTamanio"`
	Descargas      int64     `gorm:"not null;default:0" json:"descargas"`
	Activo         bool      `gorm:"not null;default:true" json:"activo"`
	AutorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"autorId"`
	Autor          *Usuario  `gorm:"foreignKey:AutorID" json:"autor,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
