package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/service"
	"github.com/vasupateljsk089-byte/Real-Estate/internal/auth/store"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/httpx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/slogx"

	_ "github.com/vasupateljsk089-byte/Real-Estate/api/realty" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *jwtx.Codec
	cookies      httpx.CookieConfig
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService  *service.AuthService
	ResetService *service.PasswordResetService
	UserService  *service.UserService
}

func NewRouter(
	codec *jwtx.Codec,
	cookies httpx.CookieConfig,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		cookies:      cookies,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Real Estate Authentication API
//	@version		0.1.0
//	@description	Cookie-based session authentication for the real estate platform.
//	@description
//	@description	Access and refresh tokens are HMAC-signed JWTs delivered as HTTP-only
//	@description	cookies. Password resets use a stateless OTP embedded in a signed reset token.
//
//	@contact.name	Real Estate Team
//	@contact.url	https://github.com/vasupateljsk089-byte/Real-Estate
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// session builds the cookie-session middleware shared by the
// authenticated routes.
func (r *Router) session() httpx.Middleware {
	return httpx.SessionMiddleware(r.codec, r.UserService, r.cookies)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService, Codec: r.codec, Cookies: r.cookies}
	logoutHandler := &LogoutHandler{Cookies: r.cookies}
	refreshHandler := &RefreshHandler{AuthService: r.AuthService, Codec: r.codec, Cookies: r.cookies}
	forgotHandler := &ForgotPasswordHandler{ResetService: r.ResetService}
	verifyHandler := &VerifyOTPHandler{ResetService: r.ResetService}
	resetHandler := &ResetPasswordHandler{ResetService: r.ResetService}
	meHandler := &MeHandler{UserService: r.UserService}

	// Credential and OTP endpoints get strict per-IP limits to slow
	// brute force attempts.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/forgot-password",
		httpx.Chain(forgotHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/verify-otp",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/reset-password",
		httpx.Chain(resetHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Logout only clears cookies, no need to be strict.
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /me - lenient rate limit by user (polled by web clients)
	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(meHandler,
			r.session(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	profileHandler := &ProfileHandler{UserService: r.UserService}
	deleteHandler := &UserDeleteHandler{UserService: r.UserService, Cookies: r.cookies}

	r.Mux.Handle("PATCH /v1/users/profile",
		httpx.Chain(profileHandler,
			r.session(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/users/{id}",
		httpx.Chain(deleteHandler,
			r.session(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
