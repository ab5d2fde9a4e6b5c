package logger

import (
	"time"

	"go.uber.org/zap"

	"github.com/dropDatabas3/bookly/internal/util"
)

// =================================================================================
// CAMPOS ESTÁNDAR - HTTP
// =================================================================================

// RequestID crea un campo para el ID del request.
func RequestID(v string) zap.Field {
	return zap.String("request_id", v)
}

// Method crea un campo para el método HTTP.
func Method(v string) zap.Field {
	return zap.String("method", v)
}

// Endpoint crea un campo para el endpoint consultado.
func Endpoint(v string) zap.Field {
	return zap.String("endpoint", v)
}

// Status crea un campo para el status code HTTP.
func Status(v int) zap.Field {
	return zap.Int("status", v)
}

// Duration crea un campo para la duración del request.
func Duration(v time.Duration) zap.Field {
	return zap.Duration("duration", v)
}

// =================================================================================
// CAMPOS ESTÁNDAR - NEGOCIO
// =================================================================================

// UserID crea un campo para el ID del usuario.
func UserID(v int64) zap.Field {
	return zap.Int64("user_id", v)
}

// BookID crea un campo para el ID del libro.
func BookID(v int64) zap.Field {
	return zap.Int64("book_id", v)
}

// Email crea un campo para el email, enmascarado.
func Email(v string) zap.Field {
	return zap.String("email", util.MaskEmail(v))
}

// Page crea un campo para el índice de página (base cero).
func Page(v int) zap.Field {
	return zap.Int("page", v)
}

// PageSize crea un campo para el tamaño de página.
func PageSize(v int) zap.Field {
	return zap.Int("page_size", v)
}

// =================================================================================
// CAMPOS ESTÁNDAR - SISTEMA
// =================================================================================

// Component crea un campo para el componente/módulo.
func Component(v string) zap.Field {
	return zap.String("component", v)
}

// Op crea un campo para la operación actual.
func Op(v string) zap.Field {
	return zap.String("op", v)
}

// Err crea un campo para un error.
func Err(err error) zap.Field {
	return zap.Error(err)
}
