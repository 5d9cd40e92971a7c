package http

import (
	"github.com/gin-gonic/gin"

	"catalog-service/pkg/response"
)

// Handlers never write error bodies themselves: failures are attached with
// c.Error and rendered by the terminal error-handling middleware, so every
// error response goes through one classifier.

// Create godoc
// @Summary     Create a new catalog item
// @Description Creates a new item. SKU must be unique across the catalog.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201  {object} response.Resp{data=createResp}
// @Failure     400  {object} response.Resp "Validation error"
// @Failure     409  {object} response.Resp "SKU already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		_ = c.Error(h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List catalog items
// @Description Returns a paginated list of items with optional status filter.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (active/discontinued)"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		_ = c.Error(h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get catalog item detail
// @Description Returns a single item by its ID.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp{data=detailResp}
// @Failure     400 {object} response.Resp "Invalid item ID"
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		_ = c.Error(h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a catalog item
// @Description Updates an item by ID. Price changes are rejected for discontinued items.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Item data"
// @Success     200 {object} response.Resp{data=updateResp}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     422 {object} response.Resp "Price locked"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		_ = c.Error(h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a catalog item
// @Description Removes an item by ID.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid item ID"
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		_ = c.Error(h.mapError(err))
		return
	}

	response.OK(c, gin.H{"deleted": id})
}
