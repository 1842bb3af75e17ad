package commands

import (
	"travel-scraper/models"
	"travel-scraper/scraper/flights"
	"travel-scraper/storage"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(airportsCmd)
}

var airportsCmd = &cobra.Command{
	Use:   "airports <country> [country...]",
	Short: "Lists the airports known to the flight API for each country.",
	Args:  cobra.MinimumNArgs(1),
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

		table := flights.NewAirportTable()
		for _, country := range args {
			codes, err := client.SearchAirports(cmd.Context(), country)
			if err != nil {
				return err
			}
			logger.Info("%s: %d airports", country, len(codes))
			table.Add(country, codes)
		}

		return exporter.Export(storage.AirportCodesTable, models.Records(table.All()))
	},
}
