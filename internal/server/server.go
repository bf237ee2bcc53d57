package server

import (
	"context"
	"fmt"
	"net/http"
	"taskTracker/internal"
	"taskTracker/internal/domain/user/usererrors"
	auth "taskTracker/internal/server/auth/user_auth"
	"taskTracker/internal/server/middleware"
	"taskTracker/internal/service/taskservice"
	"taskTracker/internal/service/userservice"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Storage interface {
	userservice.UserStorage
	taskservice.TaskStorage
}

type PasswordCodec interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type TokenSigner interface {
	NewAccessToken(identity auth.Identity) (string, error)
	Verify(token string) (auth.Identity, error)
}

type ToDoListAPI struct {
	srv         *http.Server
	users       *userservice.UserService
	tasks       *taskservice.TaskService
	tokenSigner TokenSigner
	started     time.Time
	tls         bool
	certFile    string
	keyFile     string
}

func NewServer(
	cfg internal.Config,
	db Storage,
	codec PasswordCodec,
	tokenSigner TokenSigner,
) *ToDoListAPI {
	HTTPSrv := http.Server{ //nolint:gocritic // Линтеры противоречат друг другу, оставил так
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		ReadHeaderTimeout: internal.SecFive,
	}

	api := ToDoListAPI{
		srv:         &HTTPSrv,
		users:       userservice.NewUserService(db, codec),
		tasks:       taskservice.NewTaskService(db),
		tokenSigner: tokenSigner,
		started:     time.Now(),
		tls:         cfg.SecureProtocol,
		certFile:    cfg.CertCert,
		keyFile:     cfg.KeyCert,
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	api.configRouter()

	return &api
}

func (api *ToDoListAPI) Run() error {
	if api.tls {
		log.Info().Str("addr", api.srv.Addr).Msg("listening with TLS")
		return api.srv.ListenAndServeTLS(api.certFile, api.keyFile)
	}
	log.Info().Str("addr", api.srv.Addr).Msg("listening")
	return api.srv.ListenAndServe()
}

func (api *ToDoListAPI) ShutDown(ctx context.Context) error {
	return api.srv.Shutdown(ctx)
}

// Handler нужен тестам: роутер без сетевого слушателя.
func (api *ToDoListAPI) Handler() http.Handler {
	return api.srv.Handler
}

func (api *ToDoListAPI) configRouter() {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.GzipDecompressMiddleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedExtensions([]string{".png", ".jpg", ".gif", ".mp4"}),
	))

	router.GET("/health", api.health)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", api.register)
		authGroup.POST("/login", api.login)
	}

	users := router.Group("/users", middleware.AuthMiddleware(api.tokenSigner))
	{
		users.GET("/me", api.getMe)
	}

	tasks := router.Group("/tasks", middleware.AuthMiddleware(api.tokenSigner))
	{
		tasks.GET("", api.getTasks)
		tasks.POST("", api.createTask)
		tasks.GET("/:id", api.getTaskByID)
		tasks.PUT("/:id", api.updateTask)
		tasks.DELETE("/:id", api.deleteTask)
	}

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	api.srv.Handler = router
}

func (api *ToDoListAPI) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"uptime":    time.Since(api.started).Seconds(),
	})
}

// userIDFromCtx - id владельца, положенный AuthMiddleware. При false ответ уже записан.
func userIDFromCtx(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(middleware.CtxUserID)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}

	userID, ok := value.(string)
	if !ok || userID == "" {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "userID has wrong type"})
		return "", false
	}

	return userID, true
}

// bindError - тело не разобралось: 413 если сработал лимит распаковки, иначе 400.
func bindError(ctx *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// internalError - детали только в лог, клиенту общий ответ.
func internalError(ctx *gin.Context, err error, msg string) {
	log.Error().Err(err).Str("method", ctx.Request.Method).Str("path", ctx.Request.URL.Path).Msg(msg)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": usererrors.ErrInternalServer.Error()})
}
