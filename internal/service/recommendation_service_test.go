package service

import (
	"context"
	"errors"
	"testing"

	"github.com/basquehq/basque-backend/internal/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	links map[string][]scrape.Link
	err   error
}

func (f *fakeFetcher) FetchLinks(_ context.Context, url string) ([]scrape.Link, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.links[url], nil
}

func TestBuildStaticResources(t *testing.T) {
	svc := NewRecommendationService(&fakeFetcher{})

	got, err := svc.Build(context.Background(), RecommendationAnswers{
		Transportation: "Drive alone",
		Diet:           "Meat with most meals",
		HomeEnergy:     "Mostly gas",
		Recycling:      "Sometimes",
		WaterUsage:     "High",
	})
	require.NoError(t, err)

	titles := make([]string, 0, len(got.Improvements))
	for _, imp := range got.Improvements {
		titles = append(titles, imp.Title)
	}
	assert.Contains(t, titles, "Try Carpooling or Transit Two Days a Week")
	assert.Contains(t, titles, "Electrify Appliances Over Time")
	assert.Contains(t, titles, "Set Up a Simple Compost System")
	assert.Contains(t, titles, "Install Water-Efficient Fixtures")

	require.NotEmpty(t, got.MealPlans)
	assert.Equal(t, "Start with 2 Plant-Forward Dinners/Week", got.MealPlans[0].Title)
}

func TestBuildConsistentRecyclerSkipsCompost(t *testing.T) {
	svc := NewRecommendationService(&fakeFetcher{})
	got, err := svc.Build(context.Background(), RecommendationAnswers{Recycling: "Consistently"})
	require.NoError(t, err)
	for _, imp := range got.Improvements {
		assert.NotEqual(t, "Set Up a Simple Compost System", imp.Title)
	}
}

func TestBuildAppendsScrapedLinks(t *testing.T) {
	fetcher := &fakeFetcher{links: map[string][]scrape.Link{
		energySaverURL: {
			{Title: "One", URL: "https://a"},
			{Title: "Two", URL: "https://b"},
			{Title: "Three dropped by cap", URL: "https://c"},
		},
		epaRecycleURL: {
			{Title: "Four", URL: "https://d"},
		},
	}}
	svc := NewRecommendationService(fetcher)

	got, err := svc.Build(context.Background(), RecommendationAnswers{})
	require.NoError(t, err)

	// 2 general articles + 2 capped energy links + 1 recycle link
	require.Len(t, got.Articles, 5)
	assert.Equal(t, "One", got.Articles[2].Title)
	assert.Equal(t, "Two", got.Articles[3].Title)
	assert.Equal(t, "Four", got.Articles[4].Title)
}

func TestBuildSurvivesScrapeFailure(t *testing.T) {
	svc := NewRecommendationService(&fakeFetcher{err: errors.New("timeout")})
	got, err := svc.Build(context.Background(), RecommendationAnswers{})
	require.NoError(t, err)
	assert.Len(t, got.Articles, 2)
}
