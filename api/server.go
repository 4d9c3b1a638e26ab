package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unheard-app/unheard-api/external/assistant"
	"github.com/unheard-app/unheard-api/external/onesignal"
	"github.com/unheard-app/unheard-api/logmodule"
	"github.com/unheard-app/unheard-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.UnheardCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	assistant       assistant.Assistant
	oneSignalClient *onesignal.OneSignalClient

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	httpClient := &http.Client{
		Timeout: 5 * time.Minute,
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:         store.NewUnheardStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		assistant: assistant.New(
			httpClient,
			viper.GetString("assistant.endpoint"),
			viper.GetString("assistant.token"),
			viper.GetString("assistant.model"),
		),
		oneSignalClient:    onesignal.NewClient(httpClient),
		backgroundEnqueuer: backgroundEnqueuer,
		httpClient:         httpClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	// api route other than `/auth` and registration will apply the
	// following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateMetadata)
		accountRoute.DELETE("/me", s.accountDelete)

		accountRoute.GET("/me/helps", s.myHelpRequests)
		accountRoute.GET("/me/offers", s.myOffers)
	}

	helpRoute := apiRoute.Group("/helps")
	helpRoute.Use(s.recognizeAccountMiddleware())
	{
		helpRoute.POST("", s.askForHelp)
		helpRoute.GET("", s.listOpenHelpRequests)
		helpRoute.POST("/:requestID/offers", s.offerHelp)
		helpRoute.GET("/:requestID/offers", s.listPendingOffers)
		helpRoute.PATCH("/:requestID/offers/:offerID", s.acceptOffer)
	}

	sessionRoute := apiRoute.Group("/sessions")
	sessionRoute.Use(s.recognizeAccountMiddleware())
	{
		sessionRoute.GET("", s.mySessions)
		sessionRoute.GET("/:sessionID", s.getSession)
		sessionRoute.POST("/:sessionID/messages", s.appendMessage)
		sessionRoute.PATCH("/:sessionID", s.completeSession)
	}

	articleRoute := apiRoute.Group("/articles")
	{
		articleRoute.GET("", s.listArticles)
		articleRoute.GET("/:articleID", s.getArticle)
		articleRoute.POST("/:articleID/summary", s.summarizeArticle)
	}

	learningRoute := apiRoute.Group("/learning")
	{
		learningRoute.GET("/tracks", s.listLearningTracks)
		learningRoute.GET("/tracks/:trackSlug/lessons", s.listLessons)
		learningRoute.GET("/lessons/:lessonID", s.getLesson)
		learningRoute.POST("/lessons/:lessonID/quiz", s.generateLessonQuiz)
	}

	assistantRoute := apiRoute.Group("/assistant")
	{
		assistantRoute.POST("/chat", s.assistantChat)
		assistantRoute.POST("/read-text", s.assistantReadText)
		assistantRoute.POST("/interpret-sign", s.assistantInterpretSign)
		assistantRoute.POST("/sign-cards", s.assistantSignCards)
		assistantRoute.POST("/easy-read", s.assistantEasyRead)
		assistantRoute.POST("/describe-scene", s.assistantDescribeScene)
		assistantRoute.POST("/reflection", s.assistantReflection)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/sweep-offers", s.adminSweepOffers)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "Unheard 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

// adminSweepOffers triggers the stale offer sweeper on demand
func (s *Server) adminSweepOffers(c *gin.Context) {
	rejected, err := s.mongoStore.RejectStaleOffers()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"rejected": rejected}})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
