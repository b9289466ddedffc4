package http

import (
	"github.com/gin-gonic/gin"

	"workout-core/internal/model"
	"workout-core/pkg/response"
)

// CreateMeal godoc
// @Summary     Create a meal
// @Description Creates a meal. Every referenced ingredient must exist; one missing id fails the whole write.
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       body body createMealReq true "Meal"
// @Success     200 {object} mealResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meals [POST]
func (h *handler) CreateMeal(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateMealReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.CreateMeal(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateMeal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newMealResp(output.Meal))
}

// ListMeals godoc
// @Summary     List meals
// @Description Lists meals, optionally narrowed by type, level, or bucketed ranges (quick/medium/long, low/medium/high).
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       type               query string false "Meal type (breakfast, lunch, ...)"
// @Param       cooking_level      query string false "Cooking level"
// @Param       cooking_time_range query string false "quick | medium | long"
// @Param       calorie_range      query string false "low | medium | high"
// @Param       max_cooking_time   query int    false "Upper bound on minutes"
// @Success     200 {object} listMealsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meals [GET]
func (h *handler) ListMeals(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListMealsReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.ListMeals(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMeals: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListMealsResp(output))
}

// SearchMeals godoc
// @Summary     Search meals with a kind-tagged filter
// @Description Accepts a polymorphic filter envelope; only the "meal" kind matches this store.
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Filter envelope"
// @Success     200 {object} listMealsResp
// @Failure     400 {object} response.Resp "Filter kind mismatch"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meals/search [POST]
func (h *handler) SearchMeals(c *gin.Context) {
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

	output, err := h.uc.SearchMeals(ctx, filter)
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchMeals: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListMealsResp(output))
}

// DetailMeal godoc
// @Summary     Get one meal
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       id path int true "Meal ID"
// @Success     200 {object} mealResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meals/{id} [GET]
func (h *handler) DetailMeal(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.DetailMeal(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailMeal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newMealResp(output.Meal))
}

// UpdateMeal godoc
// @Summary     Replace a meal
// @Description Fully replaces the stored meal, ingredient references included. Fails with 404 when the id is absent.
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       id   path int           true "Meal ID"
// @Param       body body updateMealReq true "Replacement meal"
// @Success     200 {object} mealResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meals/{id} [PUT]
func (h *handler) UpdateMeal(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateMealReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.UpdateMeal(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateMeal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newMealResp(output.Meal))
}

// DeleteMeal godoc
// @Summary     Delete a meal
// @Description Removes a meal. Deleting an absent id reports removed=false, not an error.
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       id path int true "Meal ID"
// @Success     200 {object} deleteResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meals/{id} [DELETE]
func (h *handler) DeleteMeal(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	removed, err := h.uc.DeleteMeal(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteMeal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Removed: removed})
}

// CreateIngredient godoc
// @Summary     Create an ingredient
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       body body createIngredientReq true "Ingredient"
// @Success     200 {object} ingredientResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ingredients [POST]
func (h *handler) CreateIngredient(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateIngredientReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.CreateIngredient(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateIngredient: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newIngredientResp(output.Ingredient))
}

// ListIngredients godoc
// @Summary     List ingredients
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Success     200 {object} listIngredientsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ingredients [GET]
func (h *handler) ListIngredients(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListIngredients(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListIngredients: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListIngredientsResp(output))
}

// DetailIngredient godoc
// @Summary     Get one ingredient
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       id path int true "Ingredient ID"
// @Success     200 {object} ingredientResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ingredients/{id} [GET]
func (h *handler) DetailIngredient(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.DetailIngredient(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailIngredient: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newIngredientResp(output.Ingredient))
}

// UpdateIngredient godoc
// @Summary     Replace an ingredient
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       id   path int                 true "Ingredient ID"
// @Param       body body updateIngredientReq true "Replacement ingredient"
// @Success     200 {object} ingredientResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ingredients/{id} [PUT]
func (h *handler) UpdateIngredient(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateIngredientReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.UpdateIngredient(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateIngredient: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newIngredientResp(output.Ingredient))
}

// DeleteIngredient godoc
// @Summary     Delete an ingredient
// @Description Removes an ingredient. Deleting an absent id reports removed=false, not an error.
// @Tags        Nutrition
// @Accept      json
// @Produce     json
// @Param       id path int true "Ingredient ID"
// @Success     200 {object} deleteResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ingredients/{id} [DELETE]
func (h *handler) DeleteIngredient(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	removed, err := h.uc.DeleteIngredient(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteIngredient: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Removed: removed})
}
