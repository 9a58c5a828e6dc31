package cmd

import (
	"github.com/spf13/cobra"

	"github.com/campusflow/trafficq/app"
)

var (
	riskVolume float64
	riskHour   int
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Classify traffic risk for a volume and hour of day",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := app.New(cfg)
		if err != nil {
			return err
		}
		return printJSON(svc.Classifier.Classify(riskVolume, riskHour))
	},
}

func init() {
	riskCmd.Flags().Float64Var(&riskVolume, "volume", 450, "predicted vehicles per hour")
	riskCmd.Flags().IntVar(&riskHour, "hour", 17, "hour of day (0-23)")
}
