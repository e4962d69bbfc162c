package storage

import "errors"

// Claves fijas bajo las que se persisten las dos colecciones
const (
	AlertsKey    = "meme-coin-alerts"
	PortfolioKey = "meme-coin-portfolio"
)

// ErrKeyNotFound indica que la clave no existe todavía en el almacenamiento
var ErrKeyNotFound = errors.New("clave no encontrada en el almacenamiento")

// Store es el contrato del almacenamiento clave-valor local. Cada clave
// guarda un documento JSON serializado como string. Las operaciones son
// síncronas y pueden fallar; los repositorios deciden qué hacer con eso.
type Store interface {
	Read(key string) (string, error)
	Write(key, value string) error
}
