package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/basquehq/basque-backend/internal/config"
	"github.com/basquehq/basque-backend/internal/db"
	"github.com/basquehq/basque-backend/internal/model"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.Action{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	canSeed, err := shouldSeed(ctx, gdb)
	if err != nil {
		return err
	}
	if !canSeed {
		log.Printf("actions already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	actions := catalog()
	err = gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM actions`).Error; err != nil {
			return fmt.Errorf("clear actions: %w", err)
		}
		return tx.CreateInBatches(actions, 50).Error
	})
	if err != nil {
		return err
	}

	log.Printf("seeded %d actions", len(actions))
	return nil
}

func shouldSeed(ctx context.Context, gdb *gorm.DB) (bool, error) {
	if os.Getenv("FORCE_SEED") == "true" {
		return true, nil
	}
	var n int64
	if err := gdb.WithContext(ctx).Model(&model.Action{}).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count actions: %w", err)
	}
	return n == 0, nil
}

func catalog() []model.Action {
	return []model.Action{
		{
			Title:        "Try carpooling to work",
			Description:  "Share rides with coworkers or use carpooling apps to reduce your commute emissions by up to 50%",
			Category:     "transportation",
			PointValue:   100,
			ImpactMetric: "Saves ~500kg CO2/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"transportation", "commute", "high-impact"},
			ShowIf:       model.Eligibility{"transportation": {"Drive alone"}},
		},
		{
			Title:        "Use public transit once a week",
			Description:  "Replace one car trip per week with bus, train, or subway",
			Category:     "transportation",
			PointValue:   75,
			ImpactMetric: "Saves ~250kg CO2/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"transportation", "commute", "medium-impact"},
			ShowIf:       model.Eligibility{"transportation": {"Drive alone", "Carpool"}},
		},
		{
			Title:        "Bike for short trips",
			Description:  "For trips under 3 miles, consider biking instead of driving",
			Category:     "transportation",
			PointValue:   50,
			ImpactMetric: "Saves ~100kg CO2/year",
			Difficulty:   "medium",
			Tags:         model.StringList{"transportation", "health", "low-impact"},
			ShowIf:       model.Eligibility{"transportation": {"Drive alone", "Carpool"}},
		},
		{
			Title:        "Try Meatless Mondays",
			Description:  "Skip meat one day per week to reduce your carbon footprint",
			Category:     "diet",
			PointValue:   80,
			ImpactMetric: "Saves ~300kg CO2/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"diet", "food", "high-impact"},
			ShowIf:       model.Eligibility{"diet": {"Meat with most meals", "Meat sometimes"}},
		},
		{
			Title:        "Reduce beef consumption",
			Description:  "Beef has the highest carbon footprint. Try chicken, fish, or plant-based alternatives",
			Category:     "diet",
			PointValue:   150,
			ImpactMetric: "Saves ~700kg CO2/year",
			Difficulty:   "medium",
			Tags:         model.StringList{"diet", "food", "very-high-impact"},
			ShowIf:       model.Eligibility{"diet": {"Meat with most meals"}},
		},
		{
			Title:        "Buy local and seasonal produce",
			Description:  "Reduce transportation emissions by choosing locally grown, seasonal fruits and vegetables",
			Category:     "diet",
			PointValue:   60,
			ImpactMetric: "Saves ~150kg CO2/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"diet", "food", "shopping", "medium-impact"},
			ShowIf:       model.Eligibility{"diet": {"Meat with most meals", "Meat sometimes", "Vegetarian", "Mostly plant-based"}},
		},
		{
			Title:        "Reduce food waste",
			Description:  "Plan meals, store food properly, and compost scraps to minimize waste",
			Category:     "diet",
			PointValue:   70,
			ImpactMetric: "Saves ~200kg CO2/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"diet", "food", "waste", "medium-impact"},
			ShowIf:       model.Eligibility{"diet": {"Meat with most meals", "Meat sometimes", "Vegetarian", "Mostly plant-based"}},
		},
		{
			Title:        "Switch to LED bulbs",
			Description:  "Replace incandescent bulbs with energy-efficient LEDs throughout your home",
			Category:     "energy",
			PointValue:   50,
			ImpactMetric: "Saves $75/year, 200kg CO2/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"energy", "home", "cost-saving", "medium-impact"},
			ShowIf:       model.Eligibility{},
		},
		{
			Title:        "Unplug devices when not in use",
			Description:  "Phantom power drain can account for 10% of your electricity bill",
			Category:     "energy",
			PointValue:   40,
			ImpactMetric: "Saves $100/year, 150kg CO2/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"energy", "home", "cost-saving", "low-impact"},
			ShowIf:       model.Eligibility{},
		},
		{
			Title:        "Use a programmable thermostat",
			Description:  "Automatically adjust temperature when you're away to save energy",
			Category:     "energy",
			PointValue:   100,
			ImpactMetric: "Saves $180/year, 800kg CO2/year",
			Difficulty:   "medium",
			Tags:         model.StringList{"energy", "home", "cost-saving", "high-impact"},
			ShowIf:       model.Eligibility{},
		},
		{
			Title:        "Install solar panels",
			Description:  "Generate clean energy and reduce your reliance on fossil fuels",
			Category:     "energy",
			PointValue:   500,
			ImpactMetric: "Saves $1000+/year, 3000kg CO2/year",
			Difficulty:   "hard",
			Tags:         model.StringList{"energy", "home", "investment", "very-high-impact"},
			ShowIf:       model.Eligibility{},
		},
		{
			Title:        "Bring reusable bags",
			Description:  "Use cloth bags instead of plastic or paper for shopping",
			Category:     "shopping",
			PointValue:   30,
			ImpactMetric: "Prevents ~100 plastic bags/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"shopping", "waste", "low-impact"},
			ShowIf:       model.Eligibility{},
		},
		{
			Title:        "Buy secondhand when possible",
			Description:  "Shop thrift stores or online marketplaces for clothing and household items",
			Category:     "shopping",
			PointValue:   90,
			ImpactMetric: "Saves ~400kg CO2/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"shopping", "waste", "cost-saving", "high-impact"},
			ShowIf:       model.Eligibility{},
		},
		{
			Title:        "Choose products with minimal packaging",
			Description:  "Opt for items with less plastic and recyclable packaging",
			Category:     "shopping",
			PointValue:   50,
			ImpactMetric: "Reduces ~50kg waste/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"shopping", "waste", "medium-impact"},
			ShowIf:       model.Eligibility{},
		},
		{
			Title:        "Install low-flow showerheads",
			Description:  "Reduce water usage by up to 50% without sacrificing pressure",
			Category:     "water",
			PointValue:   60,
			ImpactMetric: "Saves 7,000 gallons/year, $100/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"water", "home", "cost-saving", "medium-impact"},
			ShowIf:       model.Eligibility{},
		},
		{
			Title:        "Fix leaky faucets",
			Description:  "A dripping faucet can waste 3,000 gallons per year",
			Category:     "water",
			PointValue:   40,
			ImpactMetric: "Saves 3,000 gallons/year, $30/year",
			Difficulty:   "easy",
			Tags:         model.StringList{"water", "home", "cost-saving", "low-impact"},
			ShowIf:       model.Eligibility{},
		},
	}
}
