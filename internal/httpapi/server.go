package httpapi

import (
	"budgetapp/internal/auth"
	"budgetapp/internal/log"
	"budgetapp/internal/store"

	"github.com/gin-gonic/gin"
)

// API holds the dependencies shared by all handlers.
type API struct {
	store  *store.Store
	tokens *auth.TokenManager
	log    *log.Logger
}

func New(st *store.Store, tokens *auth.TokenManager, logger *log.Logger) *API {
	return &API{store: st, tokens: tokens, log: logger}
}

// Router builds the gin engine with all routes registered. Everything under
// the authed group goes through the token gate first.
func (a *API) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), log.RequestLogger(a.log))

	r.GET("/", a.welcome)
	r.POST("/test", a.createTestEntry)
	r.POST("/users", a.register)
	r.POST("/users/login", a.login)

	authed := r.Group("")
	authed.Use(a.requireAuth())
	authed.GET("/users/me", a.me)
	authed.DELETE("/users/me/token", a.logout)
	authed.POST("/budget/add", a.createOperation)
	authed.GET("/budget", a.listOperations)
	authed.GET("/budget/:id", a.getOperation)
	authed.PATCH("/budget/:id", a.updateOperation)
	authed.DELETE("/budget/:id", a.deleteOperation)

	return r
}
