package model

import (
	"time"

	"github.com/google/uuid"
)

// Comunicado categoria enum constants
const (
	CategoriaGeneral        = "GENERAL"
	CategoriaAcademico      = "ACADEMICO"
	CategoriaAdministrativo = "ADMINISTRATIVO"
	CategoriaUrgente        = "URGENTE"
)

// Comunicado estado enum constants
const (
	ComunicadoBorrador  = "BORRADOR"
	ComunicadoPublicado = "PUBLICADO"
	ComunicadoArchivado = "ARCHIVADO"
)

// Comunicado is a public announcement. Only PUBLICADO records are visible to
// unauthenticated callers; FechaPublicacion is stamped on first publish.
type Comunicado struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Titulo           string     `gorm:"type:varchar(300);not null" json:"titulo"`
	Contenido        string     `gorm:"type:text;not null" json:"contenido"`
	Resumen          string     `gorm:"type:varchar(500)" json:"resumen"`
	Categoria        string     `gorm:"type:varchar(20);not null;default:'GENERAL';index" json:"categoria"`
	Estado           string     `gorm:"type:varchar(20);not null;default:'BORRADOR';index" json:"estado"`
	Destacado        bool       `gorm:"not null;default:false" json:"destacado"`
	ArchivoURL       string     `gorm:"type:varchar(500)" json:"archivoUrl"`
	ArchivoNombre    string     `gorm:"type:varchar(255)" json:"archivoNombre"`
	Vistas           int64      `gorm:"not null;default:0" json:"vistas"`
	AutorID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"autorId"`
	Autor            *Usuario   `gorm:"foreignKey:AutorID" json:"autor,omitempty"`
	FechaPublicacion *time.Time `json:"fechaPublicacion"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
