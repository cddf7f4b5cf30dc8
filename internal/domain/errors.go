package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrFormatoJustificante extensión de archivo rechazada. El texto es el
	// mensaje literal que muestra la UI (la app es en francés).
	ErrFormatoJustificante = errors.New("Veuillez sélectionner un fichier au format jpg, jpeg ou png.")

	// ErrCargaRequerida se intentó enviar la nota sin un justificante cargado
	// (o con el borrador ya enviado).
	ErrCargaRequerida = errors.New("no hay justificante cargado para la nota")

	ErrMontoInvalido   = errors.New("monto inválido")
	ErrEntradaInvalida = errors.New("entrada inválida")
	ErrRolInvalido     = errors.New("rol de sesión inválido")
	ErrSinSesion       = errors.New("no hay sesión activa")
)
