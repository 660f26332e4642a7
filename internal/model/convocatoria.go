package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Convocatoria tipo enum constants
const (
	ConvocatoriaDocente        = "DOCENTE"
	ConvocatoriaAdministrativo = "ADMINISTRATIVO"
	ConvocatoriaCAS            = "CAS"
	ConvocatoriaDirectivo      = "DIRECTIVO"
	ConvocatoriaAuxiliar       = "AUXILIAR"
	ConvocatoriaOtro           = "OTRO"
)

// Convocatoria estado enum constants
const (
	ConvocatoriaProxima   = "PROXIMA"
	ConvocatoriaAbierta   = "ABIERTA"
	ConvocatoriaCerrada   = "CERRADA"
	ConvocatoriaDesierta  = "DESIERTA"
	ConvocatoriaConcluida = "CONCLUIDA"
)

// Convocatoria is a public job posting with an optional annex (archivo) and
// the contest bases document (base)
type Convocatoria struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Titulo          string          `gorm:"type:varchar(300);not null" json:"titulo"`
	Descripcion     string          `gorm:"type:text;not null" json:"descripcion"`
	Tipo            string          `gorm:"type:varchar(20);not null;index" json:"tipo"`
	Estado          string          `gorm:"type:varchar(20);not null;default:'PROXIMA';index" json:"estado"`
	Plazas          int             `gorm:"not null;default:1" json:"plazas"`
	Remuneracion    decimal.Decimal `gorm:"type:numeric(10,2)" json:"remuneracion"`
	Requisitos      string          `gorm:"type:text" json:"requisitos"`
	Beneficios      string          `gorm:"type:text" json:"beneficios"`
	ArchivoURL      string          `gorm:"type:varchar(500)" json:"archivoUrl"`
	ArchivoNombre   string          `gorm:"type:varchar(255)" json:"archivoNombre"`
	BaseURL         string          `gorm:"type:varchar(500)" json:"baseUrl"`
	BaseNombre      string          `gorm:"type:varchar(255)" json:"baseNombre"`
	FechaInicio     *time.Time      `gorm:"type:date" json:"fechaInicio"`
	FechaFin        *time.Time      `gorm:"type:date" json:"fechaFin"`
	FechaResultados *time.Time      `gorm:"type:date" json:"fechaResultados"`
	AutorID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"autorId"`
	Autor           *Usuario        `gorm:"foreignKey:AutorID" json:"autor,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
