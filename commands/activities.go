package commands

import (
	"travel-scraper/browser"
	"travel-scraper/models"
	"travel-scraper/scraper/activities"
	"travel-scraper/scraper/geo"
	"travel-scraper/storage"

	"github.com/spf13/cobra"
)

var activitiesFlags struct {
	from      string
	to        string
	noGeocode bool
}

func init() {
	f := activitiesCmd.Flags()
	f.StringVar(&activitiesFlags.from, "from", "", "First day of the search window (YYYY-MM-DD).")
	f.StringVar(&activitiesFlags.to, "to", "", "Last day of the search window (YYYY-MM-DD).")
	f.BoolVar(&activitiesFlags.noGeocode, "no-geocode", false, "Skip reverse geocoding; addresses are left empty.")
	rootCmd.AddCommand(activitiesCmd)
}

var activitiesCmd = &cobra.Command{
	Use:   "activities <city>",
	Short: "Scrapes every activity listed for a city.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, closeDB, err := openExporter()
		if err != nil {
			return err
		}
		defer closeDB()

		var geocoder activities.Geocoder
		if !activitiesFlags.noGeocode {
			geocoder = geo.NewClient(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.HTTPTimeout)
		}

		ctx, cancel := browser.Open(cmd.Context(), browser.Options{Headless: cfg.Headless})
		defer cancel()

		scraper := activities.NewScraper(cfg.ActivitiesURL, cfg.WaitTimeout, browser.ChromeDriver{}, geocoder, logger)
		rows, cov, err := scraper.Scrape(ctx, activities.Search{
			City:  args[0],
			Dates: activities.DateRange{From: activitiesFlags.from, To: activitiesFlags.to},
		})
		if err != nil {
			return err
		}

		prices := make([]models.Opt[float64], len(rows))
		for i, r := range rows {
			prices[i] = r.Price
		}
		printSummary(storage.ActivitiesTable, prices, cov)

		return exporter.Export(storage.ActivitiesTable, models.Records(rows))
	},
}
