package service

import (
	"context"
	"log"
	"strings"

	"github.com/basquehq/basque-backend/internal/scrape"
)

const (
	energySaverURL = "https://www.energy.gov/energysaver/energy-saver"
	epaRecycleURL  = "https://www.epa.gov/recycle"
)

// RecommendationAnswers is the subset of quiz answers the static
// recommendation rules key off of.
type RecommendationAnswers struct {
	Diet           string `json:"diet"`
	Transportation string `json:"transportation"`
	HomeEnergy     string `json:"homeEnergy"`
	Recycling      string `json:"recycling"`
	WaterUsage     string `json:"waterUsage"`
}

type MealPlan struct {
	Title string        `json:"title"`
	Items []scrape.Link `json:"items"`
}

type Improvement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type Recommendations struct {
	Articles     []scrape.Link `json:"articles"`
	MealPlans    []MealPlan    `json:"mealPlans"`
	Improvements []Improvement `json:"improvements"`
}

// LinkFetcher is the outbound scraping boundary; swapped in tests.
type LinkFetcher interface {
	FetchLinks(ctx context.Context, url string) ([]scrape.Link, error)
}

type RecommendationService interface {
	Build(ctx context.Context, answers RecommendationAnswers) (*Recommendations, error)
}

type recommendationService struct {
	fetcher LinkFetcher
}

func NewRecommendationService(fetcher LinkFetcher) RecommendationService {
	return &recommendationService{fetcher: fetcher}
}

// Build assembles the static answer-keyed resources, then tries to
// append a couple of freshly scraped links. Scraping failures only cost
// the extra links, never the response.
func (s *recommendationService) Build(ctx context.Context, answers RecommendationAnswers) (*Recommendations, error) {
	rec := buildStaticResources(answers)

	for _, url := range []string{energySaverURL, epaRecycleURL} {
		links, err := s.fetcher.FetchLinks(ctx, url)
		if err != nil {
			log.Printf("[recommend] stage=scrape_fail url=%s err=%v", url, err)
			continue
		}
		if len(links) > 2 {
			links = links[:2]
		}
		rec.Articles = append(rec.Articles, links...)
	}
	return rec, nil
}

func buildStaticResources(a RecommendationAnswers) *Recommendations {
	rec := &Recommendations{
		Articles:     []scrape.Link{},
		MealPlans:    []MealPlan{},
		Improvements: []Improvement{},
	}

	switch a.Transportation {
	case "Drive alone":
		rec.Improvements = append(rec.Improvements, Improvement{
			Title:       "Try Carpooling or Transit Two Days a Week",
			Description: "Reduce solo driving by coordinating carpools or using public transit for recurring trips.",
			Link:        "https://www.ridesharing.com/",
		})
		rec.Articles = append(rec.Articles, scrape.Link{
			Title: "Beginner Guide to Using Public Transit Effectively",
			URL:   "https://www.transitapp.com/",
		})
	case "Carpool":
		rec.Improvements = append(rec.Improvements, Improvement{
			Title:       "Plan Errands in One Trip",
			Description: "Batch errands to minimize mileage and cold starts, saving fuel and emissions.",
			Link:        "https://www.fueleconomy.gov/feg/driveHabits.jsp",
		})
	case "Public transit", "Bike/Walk":
		rec.Improvements = append(rec.Improvements, Improvement{
			Title:       "Keep up the Low-Carbon Commute",
			Description: "Maintain or increase your transit/biking days and share tips with neighbors.",
			Link:        "https://www.transportation.gov/sustainability",
		})
	}

	switch a.Diet {
	case "Meat with most meals":
		rec.MealPlans = append(rec.MealPlans, MealPlan{
			Title: "Start with 2 Plant-Forward Dinners/Week",
			Items: []scrape.Link{
				{Title: "Lentil Bolognese", URL: "https://www.budgetbytes.com/vegan-lentil-bolognese/"},
				{Title: "Chickpea Tacos", URL: "https://www.acouplecooks.com/chickpea-tacos/"},
			},
		})
		rec.Articles = append(rec.Articles, scrape.Link{
			Title: "How to Transition to a Plant-Forward Diet",
			URL:   "https://www.hsph.harvard.edu/nutritionsource/healthy-weight/healthy-eating-plate/",
		})
	case "Meat sometimes":
		rec.MealPlans = append(rec.MealPlans, MealPlan{
			Title: "Flexitarian Meal Ideas",
			Items: []scrape.Link{
				{Title: "Mushroom Stroganoff", URL: "https://www.bbcgoodfood.com/recipes/mushroom-stroganoff"},
				{Title: "Grilled Veggie Bowls", URL: "https://www.loveandlemons.com/grain-bowl/"},
			},
		})
	default:
		rec.MealPlans = append(rec.MealPlans, MealPlan{
			Title: "Plant-Based Staples",
			Items: []scrape.Link{
				{Title: "Tofu Stir-Fry", URL: "https://www.loveandlemons.com/tofu-stir-fry/"},
				{Title: "Red Curry with Veggies", URL: "https://minimalistbaker.com/easy-red-curry-with-tofu/"},
			},
		})
	}

	if strings.Contains(a.HomeEnergy, "gas") {
		rec.Improvements = append(rec.Improvements, Improvement{
			Title:       "Electrify Appliances Over Time",
			Description: "When replacing equipment, consider heat pumps and induction cooking for lower emissions and improved indoor air quality.",
			Link:        "https://www.energy.gov/energysaver/heat-pump-systems",
		})
	}

	if a.Recycling != "" && !strings.Contains(strings.ToLower(a.Recycling), "consistently") {
		rec.Improvements = append(rec.Improvements, Improvement{
			Title:       "Set Up a Simple Compost System",
			Description: "Start with a countertop bin and city collection guide to divert food waste.",
			Link:        "https://www.epa.gov/recycle/composting-home",
		})
	}

	if a.WaterUsage == "High" || a.WaterUsage == "Moderate" {
		rec.Improvements = append(rec.Improvements, Improvement{
			Title:       "Install Water-Efficient Fixtures",
			Description: "Swap in low-flow showerheads and faucet aerators to reduce hot water use.",
			Link:        "https://www.epa.gov/watersense",
		})
	}

	rec.Articles = append(rec.Articles,
		scrape.Link{Title: "Home Energy Efficiency Basics", URL: energySaverURL},
		scrape.Link{Title: "Recycling Made Easy", URL: epaRecycleURL},
	)

	return rec
}
