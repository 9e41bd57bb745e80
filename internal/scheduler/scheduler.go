package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-insights/internal/weather"
)

// Summarizer is the part of the query engine the report job needs.
type Summarizer interface {
	Summary() (weather.SummaryStatistics, error)
}

// Scheduler periodically logs a summary of the loaded records.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Summarizer
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service Summarizer) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		interval:  interval,
	}
}

// Start schedules the report job every interval and starts the underlying
// scheduler. The first report runs immediately.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: summary interval disabled; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.Report)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Report logs the current summary statistics once.
func (s *Scheduler) Report() {
	stats, err := s.service.Summary()
	if err != nil {
		log.Printf("scheduler: summary unavailable: %v", err)
		return
	}
	log.Printf("scheduler: %d days, %d rain tomorrow, %d hot & windy, %d surprise rain; avg max %.1f°C, avg min %.1f°C, avg gust %.1f km/h",
		stats.TotalDays, stats.RainTomorrowDays, stats.HotWindyDays, stats.SurpriseRainDays,
		stats.AverageMaxTemp, stats.AverageMinTemp, stats.AverageWindGustSpeed)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
