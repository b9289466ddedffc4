package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	cartHTTP "workout-core/internal/cart/delivery/http"
	cartInmem "workout-core/internal/cart/repository/inmemory"
	cartPostgre "workout-core/internal/cart/repository/postgre"
	cartUC "workout-core/internal/cart/usecase"
	catalogHTTP "workout-core/internal/catalog/delivery/http"
	catalogInmem "workout-core/internal/catalog/repository/inmemory"
	catalogPostgre "workout-core/internal/catalog/repository/postgre"
	catalogUC "workout-core/internal/catalog/usecase"
	classesHTTP "workout-core/internal/classes/delivery/http"
	classesRepo "workout-core/internal/classes/repository"
	classesInmem "workout-core/internal/classes/repository/inmemory"
	classesPostgre "workout-core/internal/classes/repository/postgre"
	classesUC "workout-core/internal/classes/usecase"
	"workout-core/internal/model"
	nutritionHTTP "workout-core/internal/nutrition/delivery/http"
	nutritionInmem "workout-core/internal/nutrition/repository/inmemory"
	nutritionPostgre "workout-core/internal/nutrition/repository/postgre"
	nutritionUC "workout-core/internal/nutrition/usecase"
	rankingsHTTP "workout-core/internal/rankings/delivery/http"
	rankingsRepo "workout-core/internal/rankings/repository"
	rankingsInmem "workout-core/internal/rankings/repository/inmemory"
	rankingsPostgre "workout-core/internal/rankings/repository/postgre"
	rankingsUC "workout-core/internal/rankings/usecase"
	"workout-core/internal/storage"
)

// Pattern followed by every domain below:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
//
// Each repository constructor has a postgre and an inmemory variant;
// srv.db == nil selects the in-memory one.

func (srv *HTTPServer) newProductStore() storage.Repository[model.Product, model.ProductFilter] {
	if srv.db == nil {
		return catalogInmem.NewProducts()
	}
	return catalogPostgre.NewProducts(srv.db, srv.l)
}

func (srv *HTTPServer) setupCatalogDomain(
	ctx context.Context,
	api *gin.RouterGroup,
	products storage.Repository[model.Product, model.ProductFilter],
) {
	var categories storage.Repository[model.Category, model.CategoryFilter]
	if srv.db == nil {
		categories = catalogInmem.NewCategories()
	} else {
		categories = catalogPostgre.NewCategories(srv.db, srv.l)
	}

	uc := catalogUC.New(products, categories, srv.l)
	h := catalogHTTP.New(srv.l, uc)
	catalogHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Catalog domain registered")
}

func (srv *HTTPServer) setupCartDomain(
	ctx context.Context,
	api *gin.RouterGroup,
	products storage.Repository[model.Product, model.ProductFilter],
) {
	var (
		cartItems     storage.Repository[model.CartItem, model.CartItemFilter]
		wishlistItems storage.Repository[model.WishlistItem, model.CartItemFilter]
	)
	if srv.db == nil {
		cartItems = cartInmem.NewCartItems()
		wishlistItems = cartInmem.NewWishlistItems()
	} else {
		cartItems = cartPostgre.NewCartItems(srv.db, srv.l)
		wishlistItems = cartPostgre.NewWishlistItems(srv.db, srv.l)
	}

	uc := cartUC.New(cartItems, wishlistItems, products, srv.l)
	h := cartHTTP.New(srv.l, uc)
	cartHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Cart domain registered")
}

func (srv *HTTPServer) setupNutritionDomain(ctx context.Context, api *gin.RouterGroup) {
	var (
		meals       storage.Repository[model.Meal, model.MealFilter]
		ingredients storage.Repository[model.Ingredient, model.MealFilter]
	)
	if srv.db == nil {
		meals = nutritionInmem.NewMeals()
		ingredients = nutritionInmem.NewIngredients()
	} else {
		meals = nutritionPostgre.NewMeals(srv.db, srv.l)
		ingredients = nutritionPostgre.NewIngredients(srv.db, srv.l)
	}

	uc := nutritionUC.New(meals, ingredients, srv.l)
	h := nutritionHTTP.New(srv.l, uc)
	nutritionHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Nutrition domain registered")
}

func (srv *HTTPServer) setupRankingsDomain(ctx context.Context, api *gin.RouterGroup) error {
	var repo rankingsRepo.Repository
	if srv.db == nil {
		repo = rankingsInmem.New(nil)
	} else {
		repo = rankingsPostgre.New(srv.db, srv.l)
	}

	// The usecase loads and validates the band table up front, so a
	// broken configuration fails the boot instead of the first request.
	uc, err := rankingsUC.New(ctx, repo, srv.l, srv.cfg.Rankings.CacheTTL)
	if err != nil {
		return err
	}

	h := rankingsHTTP.New(srv.l, uc)
	rankingsHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Rankings domain registered")
	return nil
}

func (srv *HTTPServer) setupClassesDomain(ctx context.Context, api *gin.RouterGroup) {
	var repo classesRepo.Repository
	if srv.db == nil {
		repo = classesInmem.New()
	} else {
		repo = classesPostgre.New(srv.db, srv.l)
	}

	uc := classesUC.New(repo, srv.calendar, srv.cfg.GoogleCalendar.CalendarID, srv.l)
	h := classesHTTP.New(srv.l, uc)
	classesHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Classes domain registered")
}
