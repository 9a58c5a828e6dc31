package cmd

import (
	"github.com/spf13/cobra"

	"github.com/campusflow/trafficq/app"
)

var trainDays int

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the ensemble on synthetic traffic history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := app.New(cfg)
		if err != nil {
			return err
		}
		res, err := svc.Forecaster.TrainSynthetic(trainDays)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

func init() {
	trainCmd.Flags().IntVar(&trainDays, "days", 0, "days of synthetic history (configured window when 0)")
}
