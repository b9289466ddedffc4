package http

import (
	"github.com/gin-gonic/gin"

	"workout-core/internal/catalog"
	"workout-core/internal/model"
	"workout-core/pkg/response"
)

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a product. The referenced category must exist.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body createProductReq true "Product"
// @Success     200 {object} productResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products [POST]
func (h *handler) CreateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateProductReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.CreateProduct(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateProduct: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProductResp(output.Product))
}

// ListProducts godoc
// @Summary     List products
// @Description Lists products, optionally narrowed by query filters.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       category_id query int    false "Category ID"
// @Param       color       query string false "Color (case-insensitive)"
// @Param       size        query string false "Size (case-insensitive)"
// @Param       count       query int    false "Cap on result length"
// @Success     200 {object} listProductsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products [GET]
func (h *handler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListProductsReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.ListProducts(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProducts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListProductsResp(output))
}

// SearchProducts godoc
// @Summary     Search products with a kind-tagged filter
// @Description Accepts a polymorphic filter envelope; only the "product" kind matches this store.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Filter envelope"
// @Success     200 {object} listProductsResp
// @Failure     400 {object} response.Resp "Filter kind mismatch"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/search [POST]
func (h *handler) SearchProducts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	filter, err := model.DecodeFilter(req.Kind, req.Filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SearchProducts(ctx, filter)
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchProducts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListProductsResp(output))
}

// DetailProduct godoc
// @Summary     Get one product
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} productResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/{id} [GET]
func (h *handler) DetailProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.DetailProduct(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailProduct: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProductResp(output.Product))
}

// UpdateProduct godoc
// @Summary     Replace a product
// @Description Fully replaces the stored product. Fails with 404 when the id is absent.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id   path int              true "Product ID"
// @Param       body body updateProductReq true "Replacement product"
// @Success     200 {object} productResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/{id} [PUT]
func (h *handler) UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateProductReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.UpdateProduct(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProduct: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProductResp(output.Product))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Description Removes a product. Deleting an absent id reports removed=false, not an error.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} deleteResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/{id} [DELETE]
func (h *handler) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	removed, err := h.uc.DeleteProduct(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteProduct: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Removed: removed})
}

// CreateCategory godoc
// @Summary     Create a category
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body createCategoryReq true "Category"
// @Success     200 {object} categoryResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [POST]
func (h *handler) CreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateCategoryReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.CreateCategory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(output.Category))
}

// ListCategories godoc
// @Summary     List categories
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Success     200 {object} listCategoriesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [GET]
func (h *handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListCategories(ctx, catalog.ListCategoriesInput{})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCategories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListCategoriesResp(output))
}

// DetailCategory godoc
// @Summary     Get one category
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} categoryResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/{id} [GET]
func (h *handler) DetailCategory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.DetailCategory(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(output.Category))
}

// UpdateCategory godoc
// @Summary     Replace a category
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id   path int               true "Category ID"
// @Param       body body updateCategoryReq true "Replacement category"
// @Success     200 {object} categoryResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/{id} [PUT]
func (h *handler) UpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateCategoryReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.UpdateCategory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(output.Category))
}

// DeleteCategory godoc
// @Summary     Delete a category
// @Description Removes a category. Deleting an absent id reports removed=false, not an error.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} deleteResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/{id} [DELETE]
func (h *handler) DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	removed, err := h.uc.DeleteCategory(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Removed: removed})
}
