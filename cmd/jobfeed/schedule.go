package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfeed/internal/schedule"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the collection pipeline on a fixed interval",
	Long:  "Run one collection immediately, then repeat on the given interval until interrupted.",
	RunE:  runSchedule,
}

var every time.Duration

func init() {
	scheduleCmd.Flags().DurationVar(&every, "every", 6*time.Hour, "Interval between collection runs")

	// The collect flags apply to each scheduled run as well.
	scheduleCmd.Flags().AddFlagSet(collectCmd.Flags())

	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	sources, err := resolveSources()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.New(fmt.Sprintf("@every %s", every), func(runCtx context.Context) {
		if _, err := runCollection(runCtx, cfg, sources); err != nil {
			fmt.Fprintf(os.Stderr, "collection run failed: %v\n", err)
		}
	})
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	<-ctx.Done()
	fmt.Fprintln(os.Stdout, "shutting down")
	return nil
}
