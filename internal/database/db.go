package database

import (
	"log"

	"ugel-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM. TranslateError
// maps postgres unique violations to gorm.ErrDuplicatedKey, which the
// expediente retry loop depends on.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.Rol{},
		&model.Usuario{},
		&model.Tramite{},
		&model.Comunicado{},
		&model.Convocatoria{},
		&model.Documento{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	seedRoles(db)

	return db, nil
}

// seedRoles guarantees the two fixed roles exist
func seedRoles(db *gorm.DB) {
	roles := []model.Rol{
		{Nombre: model.RolAdmin, Descripcion: "Acceso total al panel administrativo"},
		{Nombre: model.RolOperador, Descripcion: "Gestión de trámites y contenido"},
	}
	for _, rol := range roles {
		if err := db.Where(model.Rol{Nombre: rol.Nombre}).FirstOrCreate(&rol).Error; err != nil {
			log.Println("WARNING: Failed to seed role", rol.Nombre, ":", err)
		}
	}
}
