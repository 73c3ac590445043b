package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	db "github.com/ag-eitilt/Pocket-Binder/db"
	"github.com/ag-eitilt/Pocket-Binder/tmpstore"
	"github.com/ag-eitilt/Pocket-Binder/util"
)

const (
	// api routes
	PingURL       = "/ping"
	SetsImportURL = "/sets/import"
	SetsURL       = "/sets"
	SetURL        = "/sets/:code"
	SetCardsURL   = "/sets/:code/cards"
	SetExportURL  = "/sets/:code/export"
	CardURL       = "/cards/:id"
)

var (
	// api errors
	ErrInvalidParams  = errors.New("invalid parameters")
	ErrInvalidCardID  = errors.New("invalid card id")
	ErrSetNotFound    = errors.New("card set not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrImportRejected = errors.New("definitions document rejected")
)

type Service struct {
	config util.Config
	store  db.Store
	cache  tmpstore.Store
	server *http.Server
}

// Returns new service instance with provided config and stores.
func NewService(config util.Config, store db.Store, cache tmpstore.Store) (*Service, error) {
	service := &Service{
		config: config,
		store:  store,
		cache:  cache,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body); imports can be large
	server.ReadTimeout = 30 * time.Second
	// caps time spent writing the response
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.SetupRouter(server)

	service.server = server

	return service, nil
}

// Establishes HTTP router.
func (service *Service) SetupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// definitions import
	router.POST(SetsImportURL, service.importSets)

	// reading loaded content
	router.GET(SetsURL, service.listSets)
	router.GET(SetURL, service.getSet)
	router.GET(SetCardsURL, service.listSetCards)
	router.GET(SetExportURL, service.exportSet)
	router.GET(CardURL, service.cardIDMiddleware(), service.getCard)

	server.Handler = router
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
