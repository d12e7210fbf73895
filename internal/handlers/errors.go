package handlers

import (
	"errors"
	"net/http"

	api "thermostat_api"
	"thermostat_api/internal/service"
	"thermostat_api/internal/validation"

	"github.com/gin-gonic/gin"
)

// User-facing error messages.
const (
	msgUnsupportedMedia = "Tipo de contenido no soportado"
	msgInvalidJSON      = "JSON invalido"
	msgMissingField     = "Campo requerido faltante"
	msgOutOfRange       = "Valor fuera de rango"
	msgInvalidParam     = "Parametro invalido"
	msgInternal         = "Error interno del servidor"
	msgNotFound         = "Recurso no encontrado"
	msgMethodNotAllowed = "Metodo no permitido"

	msgRegistered = "dato registrado"
)

func abortWithError(c *gin.Context, code int, message, detail string) {
	c.AbortWithStatusJSON(code, api.ErrorResponse{
		Error: api.ErrorBody{Code: code, Message: message, Detail: detail},
	})
}

// respondError maps a service error to its HTTP answer and logs it.
func (h *Handler) respondError(c *gin.Context, field string, err error) {
	switch {
	case errors.Is(err, validation.ErrRejected):
		var kind validation.Kind
		if re, ok := validation.AsRejected(err); ok {
			kind = re.Kind
		}
		h.log.Warnw("thermostat_set_rejected", "path", c.FullPath(), "field", field, "kind", kind, "err", err)
		abortWithError(c, http.StatusBadRequest, msgOutOfRange, err.Error())
	default:
		h.log.Errorw("thermostat_set_failed", "path", c.FullPath(), "field", field,
			"persistence", errors.Is(err, service.ErrPersistence), "err", err)
		abortWithError(c, http.StatusInternalServerError, msgInternal, "")
	}
}

func (h *Handler) notFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, msgNotFound, "")
}

func (h *Handler) methodNotAllowed(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed, msgMethodNotAllowed, "")
}
