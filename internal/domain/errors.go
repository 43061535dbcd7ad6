package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrLastItem: el documento debe conservar al menos una línea.
	ErrLastItem = errors.New("no se puede eliminar la última línea del documento")

	// ErrRenderFailed: la generación del PDF falló en alguna etapa (layout o encoding).
	// La operación es reintentable; nunca se produce un archivo parcial.
	ErrRenderFailed = errors.New("la generación del documento falló")

	// ErrExportInFlight: ya hay una exportación en curso para esta instancia.
	ErrExportInFlight = errors.New("exportación en curso, intente de nuevo")

	// ErrStorageUnavailable: la capa de persistencia rechazó la operación.
	// El estado en memoria del caller se conserva; nada queda guardado.
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)
