package cmd

import (
	"github.com/spf13/cobra"

	"github.com/campusflow/trafficq/app"
)

var (
	forecastSegment string
	forecastHours   int
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Predict hourly traffic volume for a segment",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := app.New(cfg)
		if err != nil {
			return err
		}
		if err := svc.Init(cmd.Context()); err != nil {
			return err
		}
		points, err := svc.Forecaster.Predict(forecastSegment, forecastHours)
		if err != nil {
			return err
		}
		return printJSON(points)
	},
}

func init() {
	forecastCmd.Flags().StringVar(&forecastSegment, "segment", "fgcu_blvd", "road segment id")
	forecastCmd.Flags().IntVar(&forecastHours, "hours", 24, "forecast horizon in hours")
}
