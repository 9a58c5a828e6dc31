package cmd

import (
	"github.com/spf13/cobra"

	"github.com/campusflow/trafficq/app"
	"github.com/campusflow/trafficq/core/model"
)

var (
	statusSegments []string
	statusHours    int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Combined forecast and risk status per segment",
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
		segments := statusSegments
		if len(segments) == 0 {
			segments = model.KnownSegments
		}
		out := make([]model.SegmentStatus, 0, len(segments))
		for _, seg := range segments {
			out = append(out, svc.SegmentStatus(seg, statusHours))
		}
		return printJSON(out)
	},
}

func init() {
	statusCmd.Flags().StringSliceVar(&statusSegments, "segments", nil, "segment ids (all known when empty)")
	statusCmd.Flags().IntVar(&statusHours, "hours", 1, "forecast horizon in hours")
}
