package handler

import (
	"net/http"

	"github.com/ocallan/figureshelf/internal/service"
)

// Services bundles everything RegisterRoutes needs to wire the API.
type Services struct {
	Auth            *service.AuthService
	Catalog         *service.CatalogService
	Collection      *service.CollectionService
	Wishlist        *service.WishlistService
	Stats           *service.StatsService
	Recommendations *service.RecommendationService
	Shares          *service.ShareService
	PublicViews     *service.PublicViewService
	CookieSecure    bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, svc Services) {
	authHandler := NewAuthHandler(svc.Auth, svc.CookieSecure)
	catalogHandler := NewCatalogHandler(svc.Catalog)
	collectionHandler := NewCollectionHandler(svc.Collection)
	wishlistHandler := NewWishlistHandler(svc.Wishlist)
	dashboardHandler := NewDashboardHandler(svc.Stats, svc.Recommendations)
	shareHandler := NewShareHandler(svc.Shares)
	publicHandler := NewPublicHandler(svc.PublicViews)

	// Unauthenticated surfaces get per-IP rate limits: login against
	// credential stuffing, public views against share-token scanning.
	loginLimiter := service.NewTokenBucket(0.2, 5)
	publicLimiter := service.NewTokenBucket(2, 20)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.Handle("POST /api/auth/login", RateLimit(loginLimiter, http.HandlerFunc(authHandler.HandleLogin)))
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(svc.Auth, http.HandlerFunc(authHandler.HandleMe)))

	authed := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(svc.Auth, h)
	}

	mux.Handle("GET /api/items", authed(catalogHandler.HandleList))
	mux.Handle("GET /api/items/search", authed(catalogHandler.HandleSearch))

	mux.Handle("GET /api/collection", authed(collectionHandler.HandleList))
	mux.Handle("POST /api/collection/{itemID}", authed(collectionHandler.HandleAdd))
	mux.Handle("DELETE /api/collection/{itemID}", authed(collectionHandler.HandleRemove))
	mux.Handle("PATCH /api/collection/{itemID}/favorite", authed(collectionHandler.HandleSetFavorite))

	mux.Handle("GET /api/wishlist", authed(wishlistHandler.HandleList))
	mux.Handle("POST /api/wishlist/{itemID}", authed(wishlistHandler.HandleAdd))
	mux.Handle("DELETE /api/wishlist/{itemID}", authed(wishlistHandler.HandleRemove))

	mux.Handle("GET /api/stats", authed(dashboardHandler.HandleStats))
	mux.Handle("GET /api/recommendations", authed(dashboardHandler.HandleRecommendations))

	mux.Handle("GET /api/shares/{kind}", authed(shareHandler.HandleGet))
	mux.Handle("POST /api/shares/{kind}", authed(shareHandler.HandleCreateOrRefresh))
	mux.Handle("PATCH /api/shares/{kind}", authed(shareHandler.HandleSetActive))

	mux.Handle("GET /shared/{kind}/{token}", RateLimit(publicLimiter, http.HandlerFunc(publicHandler.HandleView)))
}
