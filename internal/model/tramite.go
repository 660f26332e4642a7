package model

import (
	"time"

	"github.com/google/uuid"
)

// Estado values a trámite moves through. RECIBIDO is the intake state;
// ATENDIDO and RECHAZADO are terminal and stamp FechaAtencion.
const (
	EstadoRecibido  = "RECIBIDO"
	EstadoEnProceso = "EN_PROCESO"
	EstadoAtendido  = "ATENDIDO"
	EstadoRechazado = "RECHAZADO"
)

// TipoTramite enum constants
const (
	TipoContratacionDocente = "CONTRATACION_DOCENTE"
	TipoLicencia            = "LICENCIA"
	TipoPermiso             = "PERMISO"
	TipoReasignacion        = "REASIGNACION"
	TipoPermuta             = "PERMUTA"
	TipoCese                = "CESE"
	TipoReincorporacion     = "REINCORPORACION"
	TipoPagoHaberes         = "PAGO_HABERES"
	TipoEscalafon           = "ESCALAFON"
	TipoReconocimiento      = "RECONOCIMIENTO"
	TipoSubsanacion         = "SUBSANACION"
	TipoApelacion           = "APELACION"
	TipoOtro                = "OTRO"
)

// Tramite is a citizen-filed administrative request tracked by expediente number.
// OperadorID is a weak reference to the staff account that last changed the
// estado — the account lifecycle is independent of the trámite lifecycle.
type Tramite struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NumeroExpediente string     `gorm:"type:varchar(30);uniqueIndex;not null" json:"numeroExpediente"`
	Nombre           string     `gorm:"type:varchar(100);not null" json:"nombre"`
	Apellido         string     `gorm:"type:varchar(100);not null" json:"apellido"`
	DNI              string     `gorm:"type:varchar(8);not null" json:"dni"`
	Email            string     `gorm:"type:varchar(150);not null" json:"email"`
	Telefono         string     `gorm:"type:varchar(15)" json:"telefono"`
	TipoTramite      string     `gorm:"type:varchar(30);not null;index" json:"tipoTramite"`
	Asunto           string     `gorm:"type:varchar(500);not null" json:"asunto"`
	Descripcion      string     `gorm:"type:text" json:"descripcion"`
	ArchivoURL       string     `gorm:"type:varchar(500)" json:"archivoUrl"`
	ArchivoNombre    string     `gorm:"type:varchar(255)" json:"archivoNombre"`
	ArchivoTamanio   int64      `json:"archivoTamanio"`
	Estado           string     `gorm:"type:varchar(20);not null;default:'RECIBIDO';index" json:"estado"`
	Observaciones    string     `gorm:"type:text" json:"observaciones"`
	OperadorID       *uuid.UUID `gorm:"type:uuid;index" json:"operadorId"`
	Operador         *Usuario   `gorm:"foreignKey:OperadorID" json:"operador,omitempty"`
	FechaAtencion    *time.Time `json:"fechaAtencion"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TramiteStats groups trámite counts by estado for the admin dashboard.
// Every estado is always present, defaulting to zero.
type TramiteStats struct {
	Recibido  int64 `json:"RECIBIDO"`
	EnProceso int64 `json:"EN_PROCESO"`
	Atendido  int64 `json:"ATENDIDO"`
	Rechazado int64 `json:"RECHAZADO"`
	Total     int64 `json:"total"`
}
