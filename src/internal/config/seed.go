package config

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"mission-service/src/internal/entity"
	"mission-service/src/internal/repository"
	"mission-service/src/pkg/log"

	"github.com/spf13/viper"
)

// campus center used as the anchor for generated mission locations
const (
	seedBaseLatitude  = 41.0082
	seedBaseLongitude = 28.9784
)

var seedTitles = []string{
	"Deliver lecture notes to the library",
	"Pick up a cargo package from the post office",
	"Grab two coffees from the campus cafe",
	"Return borrowed books before closing",
	"Drop off a lab report at the faculty office",
	"Buy printer paper from the stationery shop",
}

var seedTypes = []entity.MissionType{
	entity.MissionTypeDelivery,
	entity.MissionTypePickup,
	entity.MissionTypeErrand,
}

// SeedFixtures loads a handful of demo missions and wallets so a fresh
// instance has data to browse. Intended for local development only.
func SeedFixtures(
	config *viper.Viper,
	logger log.Log,
	missionRepository *repository.MissionRepository,
	walletRepository *repository.WalletRepository,
) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(config.GetInt64("seed.random_source")))

	count := config.GetInt("seed.mission_count")
	if count == 0 {
		count = 6
	}

	for i := 0; i < count; i++ {
		scheduled := time.Now().Add(time.Duration(1+rng.Intn(96)) * time.Hour)
		mission := &entity.Mission{
			Title: seedTitles[i%len(seedTitles)],
			Type:  seedTypes[i%len(seedTypes)],
			Origin: entity.Location{
				Latitude:  seedBaseLatitude + (rng.Float64()-0.5)*0.04,
				Longitude: seedBaseLongitude + (rng.Float64()-0.5)*0.04,
				Address:   fmt.Sprintf("Campus block %d", 1+rng.Intn(12)),
			},
			Reward:            float64(5 + rng.Intn(40)),
			EstimatedDuration: 10 + rng.Intn(80),
			RequesterID:       fmt.Sprintf("seed-student-%d", 1+i%3),
			ScheduledAt:       &scheduled,
		}

		if _, err := missionRepository.Create(ctx, mission); err != nil {
			logger.Error("seed", fmt.Sprintf("failed to seed mission: %v", err), "SeedFixtures", mission.Title)
		}
	}

	for i := 1; i <= 3; i++ {
		userID := fmt.Sprintf("seed-courier-%d", i)
		if _, err := walletRepository.CreditEarning(ctx, userID, float64(20*i), "Seeded starting balance", nil); err != nil {
			logger.Error("seed", fmt.Sprintf("failed to seed wallet: %v", err), "SeedFixtures", userID)
		}
	}

	logger.Info("seed", fmt.Sprintf("seeded %d missions and 3 wallets", count), "SeedFixtures", "")
}
