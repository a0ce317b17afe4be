package api

import (
	authUsecase "journal-backend/internal/auth/usecase"
	entryUsecase "journal-backend/internal/entry/usecase"
	"journal-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	authUsecase  authUsecase.AuthUsecase
	entryUsecase entryUsecase.EntryUsecase
	config       *config.Config
	log          zerolog.Logger
}

func NewHandler(authUc authUsecase.AuthUsecase, entryUc entryUsecase.EntryUsecase, cfg *config.Config, log zerolog.Logger) *Handler {
	return &Handler{
		authUsecase:  authUc,
		entryUsecase: entryUc,
		config:       cfg,
		log:          log,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(h.log))
	r.Use(CORS())

	SetupRoutes(r, h.authUsecase, h.entryUsecase)

	return r.Run(addr)
}
