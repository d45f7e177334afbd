// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"classical-cipher-backend/crypto"
	"classical-cipher-backend/models"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct {
	maxTextLength int
}

func NewCipherHandler(maxTextLength int) *CipherHandler {
	return &CipherHandler{maxTextLength: maxTextLength}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) ListCiphers(c *gin.Context) {
	c.JSON(http.StatusOK, models.CatalogueResponse{
		Success: true,
		Ciphers: crypto.Catalogue(),
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	h.transform(c, crypto.ModeEncrypt)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	h.transform(c, crypto.ModeDecrypt)
}

func (h *CipherHandler) transform(c *gin.Context, mode crypto.Mode) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	kind, key, err := h.resolve(c.Param("cipher"), req.Text, req.Key, req.Key2)
	if err != nil {
		h.reject(c, mode, err, func(status int, message, errKind string) {
			c.JSON(status, models.CipherResponse{
				Success:   false,
				Message:   message,
				Mode:      string(mode),
				ErrorKind: errKind,
			})
		})
		return
	}

	result, err := crypto.Transform(kind, mode, req.Text, key)
	if err != nil {
		h.reject(c, mode, err, func(status int, message, errKind string) {
			c.JSON(status, models.CipherResponse{
				Success:   false,
				Message:   message,
				Cipher:    string(kind),
				Mode:      string(mode),
				ErrorKind: errKind,
			})
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: fmt.Sprintf("Text %sed with the %s cipher", mode, kind),
		Cipher:  string(kind),
		Mode:    string(mode),
		Result:  result,
	})
}

func (h *CipherHandler) Trace(c *gin.Context) {
	var req models.TraceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.TraceResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	mode, err := crypto.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.TraceResponse{
			Success:   false,
			Message:   err.Error(),
			ErrorKind: crypto.ErrorKind(err),
		})
		return
	}

	fail := func(status int, message, errKind string) {
		c.JSON(status, models.TraceResponse{
			Success:   false,
			Message:   message,
			TraceID:   requestID(c),
			Mode:      string(mode),
			ErrorKind: errKind,
		})
	}

	kind, key, err := h.resolve(c.Param("cipher"), req.Text, req.Key, req.Key2)
	if err != nil {
		h.reject(c, mode, err, fail)
		return
	}

	cipher, err := crypto.New(kind, key)
	if err != nil {
		h.reject(c, mode, err, fail)
		return
	}

	trace, err := cipher.Trace(mode, req.Text)
	if err != nil {
		h.reject(c, mode, err, fail)
		return
	}

	result, err := cipher.Encrypt(req.Text)
	if mode == crypto.ModeDecrypt {
		result, err = cipher.Decrypt(req.Text)
	}
	if err != nil {
		h.reject(c, mode, err, fail)
		return
	}

	c.JSON(http.StatusOK, models.TraceResponse{
		Success:   true,
		Message:   fmt.Sprintf("%d steps", trace.Len()),
		TraceID:   requestID(c),
		Cipher:    string(kind),
		Mode:      string(mode),
		Result:    result,
		StepCount: trace.Len(),
		Steps:     trace,
	})
}

// resolve validates the route and the request body that every cipher
// endpoint shares.
func (h *CipherHandler) resolve(id, text, key, key2 string) (crypto.Kind, crypto.Key, error) {
	kind, err := crypto.ParseKind(id)
	if err != nil {
		return "", nil, err
	}
	if h.maxTextLength > 0 && len(text) > h.maxTextLength {
		return "", nil, &textTooLongError{length: len(text), limit: h.maxTextLength}
	}
	parsed, err := crypto.ParseKey(kind, key, key2)
	if err != nil {
		return "", nil, err
	}
	return kind, parsed, nil
}

type textTooLongError struct {
	length int
	limit  int
}

func (e *textTooLongError) Error() string {
	return fmt.Sprintf("text is %d bytes, the limit is %d", e.length, e.limit)
}

// reject maps an engine error onto an HTTP status and hands it to respond.
func (h *CipherHandler) reject(c *gin.Context, mode crypto.Mode, err error, respond func(status int, message, errKind string)) {
	var tooLong *textTooLongError
	switch {
	case errors.As(err, &tooLong):
		respond(http.StatusRequestEntityTooLarge, err.Error(), "text_too_long")
	case errors.Is(err, crypto.ErrUnknownCipher):
		respond(http.StatusNotFound, err.Error(), crypto.ErrorKind(err))
	case crypto.IsKeyError(err), errors.Is(err, crypto.ErrInvalidMode):
		log.Printf("[%s] %s %s rejected: %v", requestID(c), c.Param("cipher"), mode, err)
		respond(http.StatusBadRequest, fmt.Sprintf("Invalid key: %v", err), crypto.ErrorKind(err))
	default:
		log.Printf("[%s] %s %s failed: %v", requestID(c), c.Param("cipher"), mode, err)
		respond(http.StatusInternalServerError, fmt.Sprintf("Failed to %s text: %v", mode, err), crypto.ErrorKind(err))
	}
}
