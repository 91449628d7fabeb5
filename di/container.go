package di

import (
	"context"
	"fmt"
	"log"

	"fitflix-server/api"
	"fitflix-server/api/events"
	"fitflix-server/api/leads"
	"fitflix-server/config"
	"fitflix-server/dao/redis"
	"fitflix-server/db"
	"fitflix-server/server"
	"fitflix-server/server/handlers"
	services "fitflix-server/service"
	"fitflix-server/session"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config               *config.Config
	RedisClient          db.RedisClient
	RedisVenueDao        *redis.RedisVenueDAO
	LeadsAPI             leads.LeadsAPI
	EventsAPI            events.EventsAPI
	LocationStore        session.LocationStore
	CatalogSeederService *services.CatalogSeederService
	DiscoveryService     *services.DiscoveryService
	LeadService          *services.LeadService
	VenueHandler         *handlers.VenueHandler
	LocationHandler      *handlers.LocationHandler
	LeadHandler          *handlers.LeadHandler
	EventHandler         *handlers.EventHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	FitflixHttpServer    *server.FitflixHttpServer
}

// NewContainer initializes and wires up all dependencies. Outside prod the
// in-memory Redis and backend mocks are used.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	var redisClient db.RedisClient
	var leadsApi leads.LeadsAPI
	var eventsApi events.EventsAPI
	if cfg.IsProd() {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		geoClient, err := db.NewGeoRedisClient(ctx, redisInternalClient)
		if err != nil {
			return nil, err
		}
		redisClient = geoClient

		baseURL := api.NormalizeAPIBase(cfg.APIBaseURL)
		log.Printf("Using FitFlix backend at %s", baseURL)
		httpClient := api.NewHTTPClient(baseURL)
		leadsApi = leads.NewLeadsApiClient(httpClient)
		eventsApi = events.NewEventsApiClient(httpClient)
	} else {
		log.Printf("Using mock redis and mock FitFlix backend")
		redisClient = db.NewMockRedisClient(ctx)
		leadsApi = leads.NewLeadsApiClientMock()
		eventsApi = events.NewEventsApiClientMock(cfg.EventsPath)
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	catalogSeederService := services.NewCatalogSeederService(redisVenueDao)
	if _, err := catalogSeederService.SeedCatalog(cfg.CatalogPath); err != nil {
		return nil, fmt.Errorf("failed to seed venues catalog: %w", err)
	}

	discoveryService := services.NewDiscoveryService(redisVenueDao)
	leadService := services.NewLeadService(leadsApi, cfg.LeadTimeout)
	locationStore := session.NewCookieLocationStore(cfg.LocationDays)

	venueHandler := handlers.NewVenueHandler(discoveryService, locationStore)
	locationHandler := handlers.NewLocationHandler(locationStore)
	leadHandler := handlers.NewLeadHandler(leadService)
	eventHandler := handlers.NewEventHandler(eventsApi)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, locationHandler, leadHandler, eventHandler, muxRouter)
	fitflixHttpServer := server.NewFitflixHttpServer(router, muxRouter, cfg.HTTPAddr, cfg.ShutdownDeadline)

	return &Container{
		Config:               cfg,
		RedisClient:          redisClient,
		RedisVenueDao:        redisVenueDao,
		LeadsAPI:             leadsApi,
		EventsAPI:            eventsApi,
		LocationStore:        locationStore,
		CatalogSeederService: catalogSeederService,
		DiscoveryService:     discoveryService,
		LeadService:          leadService,
		VenueHandler:         venueHandler,
		LocationHandler:      locationHandler,
		LeadHandler:          leadHandler,
		EventHandler:         eventHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		FitflixHttpServer:    fitflixHttpServer,
	}, nil
}
