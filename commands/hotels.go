package commands

import (
	"travel-scraper/browser"
	"travel-scraper/models"
	"travel-scraper/scraper/accommodation"
	"travel-scraper/storage"

	"github.com/spf13/cobra"
)

var hotelFilters accommodation.Filters

func init() {
	f := hotelsCmd.Flags()
	f.StringVar(&hotelFilters.CheckIn, "checkin", "", "Check-in date (YYYY-MM-DD).")
	f.StringVar(&hotelFilters.CheckOut, "checkout", "", "Check-out date (YYYY-MM-DD).")
	f.IntVar(&hotelFilters.Adults, "adults", 2, "Number of adults.")
	f.IntVar(&hotelFilters.Children, "children", 0, "Number of children.")
	f.IntVar(&hotelFilters.Rooms, "rooms", 1, "Number of rooms.")
	f.StringVar(&hotelFilters.Currency, "currency", "EUR", "Currency of the price filter.")
	f.IntVar(&hotelFilters.MinPrice, "min-price", 0, "Minimum price per night.")
	f.IntVar(&hotelFilters.MaxPrice, "max-price", 0, "Maximum price per night.")
	f.IntSliceVar(&hotelFilters.StarRatings, "stars", nil, "Star ratings to include, e.g. --stars 4,5.")
	f.StringVar(&hotelFilters.MealPlan, "meal-plan", "", `Meal plan, e.g. "breakfast included" or "all inclusive".`)
	f.Float64Var(&hotelFilters.MinReviewScore, "min-review", 0, "Minimum review score on the 0-10 scale.")
	f.IntVar(&hotelFilters.MaxDistance, "max-distance", 0, "Maximum distance from the centre in metres.")
	rootCmd.AddCommand(hotelsCmd)
}

var hotelsCmd = &cobra.Command{
	Use:   "hotels <destination>",
	Short: "Scrapes the hotel search results for a destination.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, closeDB, err := openExporter()
		if err != nil {
			return err
		}
		defer closeDB()

		ctx, cancel := browser.Open(cmd.Context(), browser.Options{Headless: cfg.Headless})
		defer cancel()

		filters := hotelFilters
		filters.Destination = args[0]

		scraper := accommodation.NewScraper(cfg.AccommodationURL, cfg.WaitTimeout, cfg.ScrollDelay, cfg.MaxScrolls, browser.ChromeDriver{}, logger)
		rows, cov, err := scraper.Scrape(ctx, filters)
		if err != nil {
			return err
		}

		prices := make([]models.Opt[float64], len(rows))
		for i, r := range rows {
			prices[i] = r.Price
		}
		printSummary(storage.AccommodationsTable, prices, cov)

		return exporter.Export(storage.AccommodationsTable, models.Records(rows))
	},
}
