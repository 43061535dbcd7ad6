package entity

import "time"

// Draft es un snapshot persistido y editable de un documento, clave
// (OwnerID, ID). Es la única entidad durable del sistema: el resto del
// estado del formulario es transitorio.
//
// El registro debe hacer round-trip sin pérdida por JSON: la colección
// completa del owner se lee y escribe en bloque (read-modify-write).
type Draft struct {
	Invoice
	OwnerID      string    `json:"-"` // clave de partición; no viaja en el registro
	LastModified time.Time `json:"lastModified"`
}
