package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"rotopt/pkg/rotation/types"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	// Optional knowledge-table override files.
	TraitsCSV    string
	BenefitsXLSX string

	// Strict constraint enforcement (documented extension; default off keeps
	// hard constraints as penalty-only).
	StrictConstraints bool

	// RequireAuth switches identified routes from the dev-login cookie to a
	// mandatory X-Farm-Uid header.
	RequireAuth bool

	Optimizer types.Params
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}

	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		Timezone:          get("TZ", "America/Chicago"),
		DBPath:            get("DB_PATH", "rotopt.db"),
		TraitsCSV:         get("TRAITS_CSV", ""),
		BenefitsXLSX:      get("BENEFITS_XLSX", ""),
		StrictConstraints: get("STRICT_CONSTRAINTS", "false") == "true",
		RequireAuth:       get("REQUIRE_AUTH", "false") == "true",
		Optimizer: types.Params{
			PopulationSize:     getInt("GA_POPULATION_SIZE", 50),
			Generations:        getInt("GA_GENERATIONS", 100),
			EliteSize:          getInt("GA_ELITE_SIZE", 5),
			TournamentSize:     getInt("GA_TOURNAMENT_SIZE", 3),
			CrossoverRate:      getFloat("GA_CROSSOVER_RATE", 0.8),
			MutationRate:       getFloat("GA_MUTATION_RATE", 0.1),
			InitialTemperature: getFloat("SA_INITIAL_TEMP", 1000.0),
			CoolingRate:        getFloat("SA_COOLING_RATE", 0.95),
			MinTemperature:     getFloat("SA_MIN_TEMP", 0.01),
			MaxIterations:      getInt("SA_MAX_ITERATIONS", 1000),
		},
	}
	log.Printf("[cfg] port=%s db=%s strict=%v", cfg.Port, cfg.DBPath, cfg.StrictConstraints)
	return cfg
}
