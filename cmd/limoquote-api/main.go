// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"limoquote/internal/config"
	httptransport "limoquote/internal/http"
	"limoquote/internal/infra"
	"limoquote/internal/modules/pricing"
	"limoquote/internal/modules/zones"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := pricing.DefaultCatalog()
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer dbPool.Close()
		catalog, err = pricing.NewStore(dbPool).LoadCatalog(ctx)
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
		log.Println("rate catalog loaded with database overrides")
	} else if err := catalog.Validate(); err != nil {
		log.Fatalf("built-in catalog: %v", err)
	}

	pricingSvc := pricing.NewService(catalog, cfg.Pricing.Currency)

	var geocoder zones.Geocoder
	if cfg.Maps.APIKey != "" {
		client, err := infra.NewMaps(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = client
	}
	var zoneCache *zones.Cache
	if cfg.Redis.Addr != "" {
		zoneCache = zones.NewCache(infra.NewRedis(cfg.Redis.Addr))
	}
	zonesSvc := zones.NewService(geocoder, zoneCache)

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Pricing: pricingSvc,
		Catalog: catalog,
		Zones:   zonesSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
