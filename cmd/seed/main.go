// Seeds the realtime database with airport/flight/passenger data, and the
// Postgres reference table when configured. Counterpart of the admin
// seeding flow; run it after generating a hierarchy JSON file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/infrastructure/config"
	"udaansathi-service/internal/infrastructure/persistence"
	storeRepo "udaansathi-service/internal/interface/repository"
	"udaansathi-service/pkg/logger"
)

type seedFile struct {
	Airports    map[string]json.RawMessage `json:"airports"`
	AirportInfo map[string]struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"airport_info"`
}

func main() {
	var (
		file      = flag.String("file", "initial_flight_data.json", "hierarchy JSON file to upload")
		clearData = flag.Bool("clear", false, "delete all flight data instead of seeding")
	)
	flag.Parse()

	log := logger.NewLogger()
	defer log.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx := context.Background()

	firebaseClient, err := persistence.NewFirebaseClient(ctx, cfg.FirebaseDatabaseURL, cfg.FirebaseCredentialsFile)
	if err != nil {
		log.Fatal("Failed to connect to Firebase", "error", err)
	}
	store := storeRepo.NewFirebaseStore(firebaseClient, cfg.StoreTimeout)

	if *clearData {
		for _, path := range []string{"airports", "cancelled_flights", "notifications", "refund_requests"} {
			if err := store.Delete(ctx, path); err != nil {
				log.Fatal("Failed to clear tree", "path", path, "error", err)
			}
		}
		log.Info("Database cleared")
		return
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("Failed to read seed file", "file", *file, "error", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatal("Failed to parse seed file", "file", *file, "error", err)
	}
	if len(seed.Airports) == 0 {
		log.Fatal("Seed file contains no airports", "file", *file)
	}

	if err := store.Set(ctx, "airports", seed.Airports); err != nil {
		log.Fatal("Failed to upload airports tree", "error", err)
	}
	log.Info("Uploaded airports tree", "airports", len(seed.Airports))

	if len(seed.AirportInfo) > 0 && cfg.PostgresURI != "" {
		gormDB, err := persistence.NewPostgres(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		repo, err := storeRepo.NewGormAirportRepository(gormDB)
		if err != nil {
			log.Fatal("Failed to prepare airport reference table", "error", err)
		}

		airports := make(map[string]entity.Airport, len(seed.AirportInfo))
		for code, info := range seed.AirportInfo {
			airports[code] = entity.Airport{Code: code, City: info.City, Country: info.Country}
		}
		if err := repo.Seed(ctx, airports); err != nil {
			log.Fatal("Failed to seed airport reference table", "error", err)
		}
		log.Info("Seeded airport reference table", "airports", len(airports))
	}
}
