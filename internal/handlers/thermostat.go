package handlers

import (
	"fmt"
	"net/http"

	api "thermostat_api"
	"thermostat_api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Request body keys accepted by the write endpoints.
const (
	keyAmbient = "ambiente"
	keyTarget  = "deseada"
	keyBattery = "bateria"
	keyMode    = "climatizador"
)

// bindField reads the JSON body and returns the value under key. On failure the
// error answer has already been written.
func (h *Handler) bindField(c *gin.Context, key string) (any, bool) {
	if c.ContentType() != binding.MIMEJSON {
		abortWithError(c, http.StatusUnsupportedMediaType, msgUnsupportedMedia,
			fmt.Sprintf("Se esperaba %s", binding.MIMEJSON))
		return nil, false
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Infow("request_body_invalid", "path", c.FullPath(), "err", err)
		abortWithError(c, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return nil, false
	}

	v, ok := body[key]
	if !ok {
		abortWithError(c, http.StatusBadRequest, msgMissingField, fmt.Sprintf("Se requiere campo '%s'", key))
		return nil, false
	}
	return v, true
}

func (h *Handler) registered(c *gin.Context) {
	c.JSON(http.StatusCreated, api.MessageResponse{Message: msgRegistered})
}

// @Summary      Health check
// @Tags         sistema
// @Produce      json
// @Success      200  {object}  thermostat_api.HealthResponse
// @Router       /comprueba/ [get]
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	r := h.services.Health()
	c.JSON(http.StatusOK, api.HealthResponse{
		Status:        r.Status,
		Version:       r.Version,
		UptimeSeconds: r.UptimeSeconds,
		Timestamp:     r.Timestamp,
	})
}

// @Summary      Full thermostat state
// @Tags         termostato
// @Produce      json
// @Success      200  {object}  thermostat_api.ThermostatResponse
// @Router       /termostato/ [get]
func (h *Handler) getThermostat(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.State())
}

// @Summary      Ambient temperature
// @Tags         termostato
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /termostato/temperatura_ambiente/ [get]
func (h *Handler) getAmbient(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{validation.FieldAmbient: h.services.State().AmbientTemperature})
}

// @Summary      Set ambient temperature
// @Description  Every accepted value is also recorded in the ambient history.
// @Tags         termostato
// @Accept       json
// @Produce      json
// @Param        body  body      thermostat_api.AmbientRequest  true  "Ambient temperature"
// @Success      201   {object}  thermostat_api.MessageResponse
// @Failure      400   {object}  thermostat_api.ErrorResponse
// @Failure      415   {object}  thermostat_api.ErrorResponse
// @Failure      500   {object}  thermostat_api.ErrorResponse
// @Router       /termostato/temperatura_ambiente/ [post]
func (h *Handler) setAmbient(c *gin.Context) {
	raw, ok := h.bindField(c, keyAmbient)
	if !ok {
		return
	}
	if err := h.services.SetAmbient(c.Request.Context(), raw); err != nil {
		h.respondError(c, validation.FieldAmbient, err)
		return
	}
	h.registered(c)
}

// @Summary      Target temperature
// @Tags         termostato
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /termostato/temperatura_deseada/ [get]
func (h *Handler) getTarget(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{validation.FieldTarget: h.services.State().TargetTemperature})
}

// @Summary      Set target temperature
// @Tags         termostato
// @Accept       json
// @Produce      json
// @Param        body  body      thermostat_api.TargetRequest  true  "Target temperature"
// @Success      201   {object}  thermostat_api.MessageResponse
// @Failure      400   {object}  thermostat_api.ErrorResponse
// @Failure      415   {object}  thermostat_api.ErrorResponse
// @Failure      500   {object}  thermostat_api.ErrorResponse
// @Router       /termostato/temperatura_deseada/ [post]
func (h *Handler) setTarget(c *gin.Context) {
	raw, ok := h.bindField(c, keyTarget)
	if !ok {
		return
	}
	if err := h.services.SetTarget(c.Request.Context(), raw); err != nil {
		h.respondError(c, validation.FieldTarget, err)
		return
	}
	h.registered(c)
}

// @Summary      Battery charge
// @Tags         termostato
// @Produce      json
// @Success      200  {object}  map[string]number
// @Router       /termostato/bateria/ [get]
func (h *Handler) getBattery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{validation.FieldBattery: h.services.State().BatteryCharge})
}

// @Summary      Set battery charge
// @Description  Rounded to two decimals before the bounds check.
// @Tags         termostato
// @Accept       json
// @Produce      json
// @Param        body  body      thermostat_api.BatteryRequest  true  "Battery charge"
// @Success      201   {object}  thermostat_api.MessageResponse
// @Failure      400   {object}  thermostat_api.ErrorResponse
// @Failure      415   {object}  thermostat_api.ErrorResponse
// @Failure      500   {object}  thermostat_api.ErrorResponse
// @Router       /termostato/bateria/ [post]
func (h *Handler) setBattery(c *gin.Context) {
	raw, ok := h.bindField(c, keyBattery)
	if !ok {
		return
	}
	if err := h.services.SetBattery(c.Request.Context(), raw); err != nil {
		h.respondError(c, validation.FieldBattery, err)
		return
	}
	h.registered(c)
}

// @Summary      Climate mode
// @Tags         termostato
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /termostato/estado_climatizador/ [get]
func (h *Handler) getMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{validation.FieldMode: h.services.State().ClimateMode})
}

// @Summary      Set climate mode
// @Description  Case and surrounding spaces are ignored.
// @Tags         termostato
// @Accept       json
// @Produce      json
// @Param        body  body      thermostat_api.ModeRequest  true  "apagado | encendido | enfriando | calentando"
// @Success      201   {object}  thermostat_api.MessageResponse
// @Failure      400   {object}  thermostat_api.ErrorResponse
// @Failure      415   {object}  thermostat_api.ErrorResponse
// @Failure      500   {object}  thermostat_api.ErrorResponse
// @Router       /termostato/estado_climatizador/ [post]
func (h *Handler) setMode(c *gin.Context) {
	raw, ok := h.bindField(c, keyMode)
	if !ok {
		return
	}
	if err := h.services.SetMode(c.Request.Context(), raw); err != nil {
		h.respondError(c, validation.FieldMode, err)
		return
	}
	h.registered(c)
}

// @Summary      Battery level indicator
// @Tags         termostato
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      405  {object}  thermostat_api.ErrorResponse
// @Router       /termostato/indicador/ [get]
func (h *Handler) getIndicator(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"indicador": h.services.Indicator()})
}
