package trajectory

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceFetch: falló alguno de los dos listados principales; no hay timeline parcial.
	ErrSourceFetch = errors.New("source fetch failed")

	ErrValidation  = errors.New("validation failed")
	ErrForbidden   = errors.New("forbidden")
	ErrPersistence = errors.New("note persistence failed")

	// ErrRebuild: la nota quedó guardada pero no se pudo recalcular la trayectoria.
	ErrRebuild = errors.New("timeline rebuild failed")

	// ErrSuperseded: otra construcción más reciente reemplazó a esta.
	ErrSuperseded = errors.New("timeline build superseded")
)
