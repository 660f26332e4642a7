package model

import (
	"time"

	"github.com/google/uuid"
)

// Role names checked by the auth middleware
const (
	RolAdmin    = "ADMIN"
	RolOperador = "OPERADOR"
)

// Rol is a staff role (ADMIN or OPERADOR)
type Rol struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nombre      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"nombre"`
	Descripcion string    `gorm:"type:varchar(200)" json:"descripcion"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Usuario represents a staff account able to administer the system
type Usuario struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nombre       string     `gorm:"type:varchar(100);not null" json:"nombre"`
	Apellido     string     `gorm:"type:varchar(100);not null" json:"apellido"`
	Email        string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"type:varchar(255);not null" json:"-"` // never serialized
	DNI          string     `gorm:"type:varchar(8)" json:"dni"`
	Telefono     string     `gorm:"type:varchar(15)" json:"telefono"`
	Activo       bool       `gorm:"not null;default:true" json:"activo"`
	RolID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"rolId"`
	Rol          *Rol       `gorm:"foreignKey:RolID" json:"rol,omitempty"`
	UltimoAcceso *time.Time `json:"ultimoAcceso"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
