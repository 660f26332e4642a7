package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPagina = 1
	DefaultLimite = 20
	MaxLimite     = 100
)

// Params holds validated pagination parameters
type Params struct {
	Pagina int
	Limite int
	Offset int
}

// Parse extracts and validates pagina/limite from query parameters
func Parse(c *gin.Context) Params {
	pagina, _ := strconv.Atoi(c.DefaultQuery("pagina", strconv.Itoa(DefaultPagina)))
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", strconv.Itoa(DefaultLimite)))

	if pagina < 1 {
		pagina = DefaultPagina
	}
	if limite < 1 {
		limite = DefaultLimite
	}
	if limite > MaxLimite {
		limite = MaxLimite
	}

	return Params{
		Pagina: pagina,
		Limite: limite,
		Offset: (pagina - 1) * limite,
	}
}
