package cron

import (
	"context"
	"log"
	"time"

	"serenemind/services/scheduling"
)

const sweepInterval = 15 * time.Minute

// StartCompletionSweep periodically marks elapsed scheduled appointments as
// completed so they leave users' upcoming lists and free their slot history.
func StartCompletionSweep(schedSvc scheduling.SchedulingService) {
	go func() {
		log.Println("[CompletionSweep] starting appointment completion sweep...")

		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			runSweep(schedSvc)
			<-ticker.C
		}
	}()
}

func runSweep(schedSvc scheduling.SchedulingService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := schedSvc.CompleteElapsed(ctx, time.Now())
	if err != nil {
		log.Printf("[CompletionSweep] sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[CompletionSweep] marked %d appointments completed", n)
	}
}
