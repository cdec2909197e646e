package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gofiber/fiber/v2"

	"sched-project/api"
	"sched-project/config"
	"sched-project/internal/core"
	"sched-project/internal/loader"
	"sched-project/internal/report"
	"sched-project/internal/schedulers"
	"sched-project/pkg/log"
)

func main() {
	cfg := config.GetSchedulerConfig()
	logger := log.BuildLogger(cfg.LogLevel)

	// With a dataset (CSV file argument, or a configured path/URL) the
	// program runs both schedulers once and prints the report; otherwise it
	// serves the HTTP API.
	switch {
	case len(os.Args) > 1:
		if err := runFile(os.Args[1], os.Stdout); err != nil {
			logger.Error("schedule run failed", log.ErrAttr(err))
			os.Exit(1)
		}
		return
	case cfg.DatasetPath != "":
		if err := runFile(cfg.DatasetPath, os.Stdout); err != nil {
			logger.Error("schedule run failed", log.ErrAttr(err))
			os.Exit(1)
		}
		return
	case cfg.DatasetURL != "":
		processes, err := loader.FetchProcesses(cfg.DatasetURL)
		if err == nil {
			err = runProcesses(processes, os.Stdout)
		}
		if err != nil {
			logger.Error("schedule run failed", log.ErrAttr(err))
			os.Exit(1)
		}
		return
	}

	app := fiber.New()
	handler := api.NewSchedulerHandlerImpl(cfg, logger)
	api.RegisterRoutes(app, handler)

	logger.Info("scheduler server listening", "port", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Error("server stopped", log.ErrAttr(err))
		os.Exit(1)
	}
}

func runFile(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening scheduling file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	processes, err := loader.LoadProcesses(f)
	if err != nil {
		return err
	}
	return runProcesses(processes, w)
}

func runProcesses(processes []*core.Process, w io.Writer) error {
	fcfs := schedulers.NewFirstComeFirstServe()
	for _, p := range processes {
		fcfs.AddProcess(p)
	}
	if err := fcfs.Execute(); err != nil {
		return err
	}
	if err := writeReport(w, "First Come First Serve", fcfs); err != nil {
		return err
	}

	sjf := schedulers.NewShortestJobFirst()
	for _, p := range processes {
		sjf.AddProcess(core.NewProcess(p.ProcessId, p.ArrivalTime, p.BurstTime))
	}
	if err := sjf.Execute(); err != nil {
		return err
	}
	return writeReport(w, "Shortest Job First (non-preemptive)", sjf)
}

type engine interface {
	History() []*core.Process
	CalcAvgTurnaroundTime() (float64, error)
	CalcAvgWaitingTime() (float64, error)
}

func writeReport(w io.Writer, title string, scheduler engine) error {
	history := scheduler.History()
	if len(history) == 0 {
		_, _ = fmt.Fprintf(w, "%s: no processes scheduled\n", title)
		return nil
	}

	avgTurnaround, err := scheduler.CalcAvgTurnaroundTime()
	if err != nil {
		return err
	}
	avgWaiting, err := scheduler.CalcAvgWaitingTime()
	if err != nil {
		return err
	}

	report.WriteSchedule(w, title, history, avgTurnaround, avgWaiting)
	report.WriteGantt(w, history)
	_, _ = fmt.Fprintf(w, "Average turnaround time : %.2f\n", avgTurnaround)
	_, _ = fmt.Fprintf(w, "Average waiting time    : %.2f\n\n", avgWaiting)
	return nil
}
