package commands

import (
	"fmt"

	"travel-scraper/models"
	"travel-scraper/scraper/flights"
	"travel-scraper/storage"

	"github.com/spf13/cobra"
)

var flightsFlags struct {
	query       flights.Query
	fromCountry string
	toCountry   string
}

func init() {
	f := flightsCmd.Flags()
	f.StringVar(&flightsFlags.fromCountry, "from-country", "", "Country of the origin city.")
	f.StringVar(&flightsFlags.toCountry, "to-country", "", "Country of the destination city.")
	f.StringVar(&flightsFlags.query.Date, "date", "", "Departure date (YYYY-MM-DD).")
	f.StringVar(&flightsFlags.query.ReturnDate, "return-date", "", "Return date (YYYY-MM-DD); omit for one-way.")
	f.IntVar(&flightsFlags.query.Adults, "adults", 1, "Number of adults.")
	f.IntVar(&flightsFlags.query.Children, "children", 0, "Number of children.")
	f.IntVar(&flightsFlags.query.Infants, "infants", 0, "Number of infants.")
	f.StringVar(&flightsFlags.query.CabinClass, "cabin", "economy", "economy, premium_economy, business or first.")
	f.StringVar(&flightsFlags.query.SortBy, "sort", "best", "best, price_high, fastest, outbound_take_off_time, ...")
	f.StringVar(&flightsFlags.query.Currency, "currency", "EUR", "Price currency.")
	f.StringVar(&flightsFlags.query.Market, "market", "es-ES", "Market locale.")
	f.StringVar(&flightsFlags.query.CountryCode, "country-code", "ES", "Country code of the market.")
	_ = flightsCmd.MarkFlagRequired("from-country")
	_ = flightsCmd.MarkFlagRequired("to-country")
	_ = flightsCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(flightsCmd)
}

var flightsCmd = &cobra.Command{
	Use:   "flights <origin city> <destination city>",
	Short: "Searches itineraries between two cities.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := flights.NewClient(cfg.FlightsAPIURL, cfg.RapidAPIKey, cfg.RapidAPIHost, cfg.HTTPTimeout, logger)
		if err != nil {
			return err
		}
		exporter, closeDB, err := openExporter()
		if err != nil {
			return err
		}
		defer closeDB()

		ctx := cmd.Context()
		resolver := flights.NewResolver(client)

		query := flightsFlags.query
		if query.Origin, err = resolver.Resolve(ctx, flightsFlags.fromCountry, args[0]); err != nil {
			return err
		}
		if query.Destination, err = resolver.Resolve(ctx, flightsFlags.toCountry, args[1]); err != nil {
			return err
		}
		logger.Info("Searching %s (%s) -> %s (%s) on %s", query.Origin.City, query.Origin.SkyID,
			query.Destination.City, query.Destination.SkyID, query.Date)

		result, cov, err := client.SearchItineraries(ctx, query)
		if err != nil {
			return err
		}
		if err := exporter.Export(storage.AirportCodesTable, models.Records(resolver.Table().All())); err != nil {
			return err
		}

		itineraries, ok := result.Get()
		if !ok {
			logger.Warn("No itineraries in the response")
			return nil
		}

		prices := make([]models.Opt[float64], len(itineraries))
		for i, r := range itineraries {
			prices[i] = r.Price
		}
		printSummary(storage.ItinerariesTable, prices, cov)

		if err := exporter.Export(storage.ItinerariesTable, models.Records(itineraries)); err != nil {
			return fmt.Errorf("export itineraries: %w", err)
		}
		return nil
	},
}
