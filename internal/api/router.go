package api

import (
	"database/sql"
	"net/http"

	"github.com/kasozi/homefind/internal/model"
	"github.com/kasozi/homefind/internal/payment"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, verifier payment.Verifier) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	propertiesHandler := &PropertiesHandler{DB: db}
	referenceHandler := &ReferenceHandler{DB: db}
	bidsHandler := &BidsHandler{DB: db}
	paymentsHandler := &PaymentsHandler{Verifier: verifier, JWTSecret: jwtSecret}

	authMW := AuthMiddleware(jwtSecret, db)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireManager := RequireRole(model.RoleManager)

	// Public browsing endpoints. Static routes must be registered with
	// the method pattern before the {id} wildcard claims them.
	mux.HandleFunc("GET /api/properties", propertiesHandler.List)
	mux.HandleFunc("GET /api/properties/featured", propertiesHandler.Featured)
	mux.HandleFunc("GET /api/properties/category/{category}", propertiesHandler.ByCategory)
	mux.HandleFunc("GET /api/properties/search", propertiesHandler.Search)
	mux.HandleFunc("POST /api/properties/filter", propertiesHandler.Filter)
	mux.HandleFunc("GET /api/properties/{id}", propertiesHandler.Get)
	mux.HandleFunc("GET /api/properties/{id}/photo", propertiesHandler.GetPhoto)
	mux.HandleFunc("GET /api/amenities", referenceHandler.ListAmenities)
	mux.HandleFunc("GET /api/property-types", referenceHandler.ListPropertyTypes)

	// Auction bidding is open to the public.
	mux.HandleFunc("GET /api/properties/{id}/bids", bidsHandler.List)
	mux.HandleFunc("POST /api/properties/{id}/bid", bidsHandler.Place)

	// Payment verification issues viewing passes.
	mux.HandleFunc("POST /api/verify-payment", paymentsHandler.Verify)

	// Staff authentication.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Catalog management (manager+).
	mux.Handle("POST /api/properties", authMW(requireManager(http.HandlerFunc(propertiesHandler.Create))))
	mux.Handle("PUT /api/properties/{id}/photo", authMW(requireManager(http.HandlerFunc(propertiesHandler.UploadPhoto))))
	mux.Handle("POST /api/amenities", authMW(requireManager(http.HandlerFunc(referenceHandler.CreateAmenity))))
	mux.Handle("POST /api/property-types", authMW(requireManager(http.HandlerFunc(referenceHandler.CreatePropertyType))))

	// User management (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	return LoggingMiddleware(mux)
}
