package handlers

import (
	"errors"
	request "lista_presentes/internal/adapter/http/dto/request"
	response "lista_presentes/internal/adapter/http/dto/response"
	"lista_presentes/internal/infrastructure/logging"
	"lista_presentes/internal/usecase"
	"lista_presentes/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	msgGiftItemCreated = "Produto criado com sucesso!"
	msgGiftItemUpdated = "Produto atualizado com sucesso"
	msgGiftItemDeleted = "Produto deletado com sucesso!"
)

var (
	errMissingGiftItemFields = pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Dados incompletos para criar o produto.", http.StatusBadRequest)
	errInvalidPurchasedFlag  = pkg.NewDomainErrorSimple("INVALID_COMPRADO", `O campo "comprado" é inválido`, http.StatusBadRequest)
)

// GiftItemHandler handles HTTP requests for the gift list.

type GiftItemHandler struct {
	usecase usecase.IGiftItemUseCase
}

func NewGiftItemHandler(uc usecase.IGiftItemUseCase) *GiftItemHandler {
	return &GiftItemHandler{usecase: uc}
}

// ListGiftItems godoc
// @Summary  List every gift item
// @Tags     produtos
// @Produce  json
// @Success  200 {array}  response.GiftItemResponse
// @Failure  500 {object} pkg.HTTPError
// @Security Bearer
// @Router   /produtos [get]
func (h *GiftItemHandler) ListGiftItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, mapGiftItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGiftItems(items))
}

// GetGiftItem godoc
// @Summary  Get a gift item by id
// @Tags     produtos
// @Produce  json
// @Param    id  path     int true "Gift item id"
// @Success  200 {object} response.GiftItemResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /produtos/{id} [get]
func (h *GiftItemHandler) GetGiftItem(c *gin.Context) {
	id, ok := parseGiftItemID(c)
	if !ok {
		return
	}

	item, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, mapGiftItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGiftItem(item))
}

// CreateGiftItem godoc
// @Summary  Add a gift item
// @Tags     produtos
// @Accept   json
// @Produce  plain
// @Param    body body     request.GiftItemCreateRequest true "Gift item"
// @Success  201  {string} string
// @Failure  400  {object} pkg.HTTPError
// @Failure  500  {object} pkg.HTTPError
// @Security Bearer
// @Router   /produtos [post]
func (h *GiftItemHandler) CreateGiftItem(c *gin.Context) {
	var payload request.GiftItemCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	item, err := payload.ToGiftItem()
	if err != nil {
		abortWithError(c, errMissingGiftItemFields)
		return
	}

	if _, err := h.usecase.Create(c.Request.Context(), item); err != nil {
		abortWithError(c, mapGiftItemError(err))
		return
	}
	c.String(http.StatusCreated, msgGiftItemCreated)
}

// UpdateGiftItem godoc
// @Summary  Mark a gift item as purchased or not
// @Tags     produtos
// @Accept   json
// @Produce  json
// @Param    id   path     int                           true "Gift item id"
// @Param    body body     request.GiftItemUpdateRequest true "Purchased flag"
// @Success  200  {object} response.MessageResponse
// @Failure  400  {object} pkg.HTTPError
// @Failure  500  {object} pkg.HTTPError
// @Security Bearer
// @Router   /produtos/{id} [put]
func (h *GiftItemHandler) UpdateGiftItem(c *gin.Context) {
	id, ok := parseGiftItemID(c)
	if !ok {
		return
	}

	var payload request.GiftItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPurchasedFlag)
		return
	}
	purchased, err := payload.ResolvePurchased()
	if err != nil {
		abortWithError(c, errInvalidPurchasedFlag)
		return
	}

	if err := h.usecase.UpdatePurchased(c.Request.Context(), id, purchased); err != nil {
		abortWithError(c, mapGiftItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: msgGiftItemUpdated})
}

// DeleteGiftItem godoc
// @Summary  Remove a gift item
// @Tags     produtos
// @Produce  plain
// @Param    id  path     int true "Gift item id"
// @Success  200 {string} string
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Security Bearer
// @Router   /produtos/{id} [delete]
func (h *GiftItemHandler) DeleteGiftItem(c *gin.Context) {
	id, ok := parseGiftItemID(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, mapGiftItemError(err))
		return
	}
	logging.Log.WithField("id", id).Info("[gift][handler] delete success")
	c.String(http.StatusOK, msgGiftItemDeleted)
}

// parseGiftItemID accepts any non-negative id. No item ever has id 0, so it
// behaves like any other missing id.
func parseGiftItemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		abortWithError(c, errInvalidItemID)
		return 0, false
	}
	return id, true
}

func mapGiftItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGiftItemID):
		return errInvalidItemID
	case errors.Is(err, usecase.ErrInvalidGiftItemPrice):
		return pkg.NewDomainErrorSimple("INVALID_VALOR", "Invalid valor", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGiftItemNotFound):
		return pkg.NewDomainErrorSimple("GIFT_ITEM_NOT_FOUND", "Produto não encontrado", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
