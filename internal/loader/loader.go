// Package loader reads process sets from outside the engine: CSV files for
// the CLI and a JSON endpoint for remote datasets.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"sched-project/internal/core"
	"sched-project/internal/requests"
)

var ErrInvalidRow = errors.New("invalid process row")

// LoadProcesses parses id,arrival,burst CSV rows into processes.
func LoadProcesses(r io.Reader) ([]*core.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]*core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3", ErrInvalidRow, i, len(row))
		}
		arrivalTime, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d arrival time %q", ErrInvalidRow, i, row[1])
		}
		burstTime, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d burst time %q", ErrInvalidRow, i, row[2])
		}
		processes = append(processes, core.NewProcess(row[0], arrivalTime, burstTime))
	}
	return processes, nil
}

// FetchProcesses downloads a JSON job list and converts it to processes.
func FetchProcesses(url string) ([]*core.Process, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching process set: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching process set: unexpected status %d", resp.StatusCode)
	}

	var request requests.ScheduleRequests
	if err := json.NewDecoder(resp.Body).Decode(&request); err != nil {
		return nil, fmt.Errorf("decoding process set: %w", err)
	}

	processes := make([]*core.Process, 0, len(request.Jobs))
	for _, job := range request.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime))
	}
	return processes, nil
}
