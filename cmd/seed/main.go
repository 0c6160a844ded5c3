// Command seed populates the food catalog with a baseline set of foods.
// Entries are upserted by external id, so re-running is safe.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
	mongodb "github.com/vitalrack/vitalrack-api/internal/infrastructure/db/mongo"
	"github.com/vitalrack/vitalrack-api/internal/pkg/config"
	"github.com/vitalrack/vitalrack-api/pkg/logger"
)

// Macros per 100 g unless the name says otherwise.
var foods = []domain.Food{
	// Proteínas
	{ExternalID: "pechuga-pollo", Name: "Pechuga de pollo (sin piel)", Calories: 110, Protein: 23, Carbs: 0, Fat: 1.5},
	{ExternalID: "pavo-pechuga", Name: "Pavo (pechuga sin piel)", Calories: 105, Protein: 22, Carbs: 0, Fat: 1.2},
	{ExternalID: "ternera-magra", Name: "Carne magra de ternera", Calories: 140, Protein: 21, Carbs: 0, Fat: 5},
	{ExternalID: "salmon-filete", Name: "Filete de salmón", Calories: 208, Protein: 20, Carbs: 0, Fat: 13},
	{ExternalID: "atun-lata-natural", Name: "Atún en lata (al natural)", Calories: 116, Protein: 26, Carbs: 0, Fat: 1},
	{ExternalID: "merluza", Name: "Pescado blanco (merluza)", Calories: 75, Protein: 16.5, Carbs: 0, Fat: 0.7},
	{ExternalID: "huevo-entero", Name: "Huevo entero", Calories: 72, Protein: 6.3, Carbs: 0.4, Fat: 4.8},
	{ExternalID: "claras-huevo", Name: "Claras de huevo", Calories: 52, Protein: 11, Carbs: 0.7, Fat: 0.2},
	{ExternalID: "yogur-griego-0", Name: "Yogur griego 0 % M.G.", Calories: 59, Protein: 10.2, Carbs: 3.6, Fat: 0.4},
	{ExternalID: "whey", Name: "Proteína de suero (whey)", Calories: 120, Protein: 24, Carbs: 2, Fat: 1.5},
	{ExternalID: "tofu-firme", Name: "Tofu firme", Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8},
	// Hidratos
	{ExternalID: "arroz-blanco-cocido", Name: "Arroz blanco cocido", Calories: 130, Protein: 2.4, Carbs: 28.2, Fat: 0.3},
	{ExternalID: "arroz-integral-cocido", Name: "Arroz integral cocido", Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9},
	{ExternalID: "avena-cruda", Name: "Avena (cruda)", Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9},
	{ExternalID: "quinoa-cocida", Name: "Quinoa cocida", Calories: 120, Protein: 4.4, Carbs: 21.3, Fat: 1.9},
	{ExternalID: "patata-cocida", Name: "Patata cocida", Calories: 87, Protein: 2, Carbs: 20.1, Fat: 0.1},
	{ExternalID: "pan-integral", Name: "Pan integral", Calories: 75, Protein: 3, Carbs: 12.5, Fat: 1},
	{ExternalID: "pasta-integral-cocida", Name: "Pasta integral cocida", Calories: 124, Protein: 5, Carbs: 25, Fat: 1},
	{ExternalID: "platano", Name: "Plátano", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.3},
	{ExternalID: "manzana", Name: "Manzana", Calories: 95, Protein: 0.5, Carbs: 25.1, Fat: 0.3},
	{ExternalID: "fresas", Name: "Fresas", Calories: 32, Protein: 0.7, Carbs: 7.7, Fat: 0.3},
	// Verduras
	{ExternalID: "brocoli", Name: "Brócoli", Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4},
	{ExternalID: "espinacas", Name: "Espinacas", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4},
	{ExternalID: "tomate", Name: "Tomate", Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2},
	{ExternalID: "zanahoria", Name: "Zanahoria", Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2},
	{ExternalID: "champinones", Name: "Champiñones blancos", Calories: 22, Protein: 3.1, Carbs: 3.3, Fat: 0.3},
	// Grasas
	{ExternalID: "aceite-oliva", Name: "Aceite de oliva virgen extra", Calories: 119, Protein: 0, Carbs: 0, Fat: 13.5},
	{ExternalID: "aguacate", Name: "Aguacate", Calories: 160, Protein: 2, Carbs: 8.5, Fat: 15},
	{ExternalID: "almendras", Name: "Almendras", Calories: 579, Protein: 21.2, Carbs: 21.6, Fat: 49.4},
	{ExternalID: "nueces", Name: "Nueces", Calories: 654, Protein: 15.2, Carbs: 13.7, Fat: 65.2},
	{ExternalID: "mantequilla-mani", Name: "Mantequilla de maní", Calories: 94, Protein: 3.6, Carbs: 3.2, Fat: 8.1},
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongodb.NewFoodRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create food indexes")
	}

	for i := range foods {
		if _, err := repo.UpsertByExternalID(ctx, &foods[i]); err != nil {
			log.Fatal().Err(err).Str("external_id", foods[i].ExternalID).Msg("seed failed")
		}
	}

	log.Info().Int("count", len(foods)).Msg("food catalog seeded")
}
