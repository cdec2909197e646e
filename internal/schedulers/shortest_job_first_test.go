package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sched-project/internal/core"
	"sched-project/internal/requests"
)

func TestShortestJobFirst_Execute(t *testing.T) {
	scheduler := NewShortestJobFirst()
	scheduler.AddProcess(core.NewProcess("P1", 2, 6))
	scheduler.AddProcess(core.NewProcess("P2", 5, 2))
	scheduler.AddProcess(core.NewProcess("P3", 1, 8))
	scheduler.AddProcess(core.NewProcess("P4", 0, 3))
	scheduler.AddProcess(core.NewProcess("P5", 4, 4))

	require.NoError(t, scheduler.Execute())

	history := scheduler.History()
	require.Len(t, history, 5)

	var runOrder []string
	for _, p := range history {
		runOrder = append(runOrder, p.ProcessId)
	}
	// P4 arrives first at t=0. At t=3 both P3 (burst 8) and P1 (burst 6)
	// have arrived, so P1 runs. At t=9 everything else has arrived and the
	// bursts pick P2 (2), then P5 (4), then P3 (8).
	assert.Equal(t, []string{"P4", "P1", "P2", "P5", "P3"}, runOrder)

	wantCompletion := []int{3, 9, 11, 15, 23}
	wantTurnaround := []int{3, 7, 6, 11, 22}
	wantWaiting := []int{0, 1, 4, 7, 14}
	for i, p := range history {
		assert.Equal(t, wantCompletion[i], p.CompletionTime, "completion of %s", p.ProcessId)
		assert.Equal(t, wantTurnaround[i], p.TurnaroundTime, "turnaround of %s", p.ProcessId)
		assert.Equal(t, wantWaiting[i], p.WaitingTime, "waiting of %s", p.ProcessId)
	}

	avgTurnaround, err := scheduler.CalcAvgTurnaroundTime()
	require.NoError(t, err)
	assert.InDelta(t, 9.8, avgTurnaround, 1e-9)

	avgWaiting, err := scheduler.CalcAvgWaitingTime()
	require.NoError(t, err)
	assert.InDelta(t, 5.2, avgWaiting, 1e-9)
}

// At every selection step the chosen process must have the minimum burst time
// among all arrived, not-yet-run processes.
func TestShortestJobFirst_SelectionRule(t *testing.T) {
	processes := []*core.Process{
		core.NewProcess("A", 0, 9),
		core.NewProcess("B", 1, 4),
		core.NewProcess("C", 2, 2),
		core.NewProcess("D", 3, 7),
		core.NewProcess("E", 8, 1),
	}
	scheduler := NewShortestJobFirst()
	for _, p := range processes {
		scheduler.AddProcess(p)
	}
	require.NoError(t, scheduler.Execute())

	history := scheduler.History()
	require.Len(t, history, len(processes))

	completed := make(map[string]bool, len(history))
	for _, chosen := range history {
		startTime := chosen.CompletionTime - chosen.BurstTime
		for _, other := range processes {
			if completed[other.ProcessId] || other.ProcessId == chosen.ProcessId {
				continue
			}
			if other.ArrivalTime <= startTime {
				assert.GreaterOrEqual(t, other.BurstTime, chosen.BurstTime,
					"%s (burst %d) skipped over in favor of %s (burst %d)",
					other.ProcessId, other.BurstTime, chosen.ProcessId, chosen.BurstTime)
			}
		}
		completed[chosen.ProcessId] = true
	}
}

func TestShortestJobFirst_TieBreaksToQueueOrder(t *testing.T) {
	scheduler := NewShortestJobFirst()
	scheduler.AddProcess(core.NewProcess("D", 0, 2))
	scheduler.AddProcess(core.NewProcess("E", 1, 3))
	scheduler.AddProcess(core.NewProcess("F", 2, 3))

	require.NoError(t, scheduler.Execute())

	var runOrder []string
	for _, p := range scheduler.History() {
		runOrder = append(runOrder, p.ProcessId)
	}
	// E and F tie on burst time at t=2; E sits earlier in the queue.
	assert.Equal(t, []string{"D", "E", "F"}, runOrder)
}

// The clock never fast-forwards to a future arrival: when no queued process
// has arrived at the moment a selection is due, the run terminates and the
// stragglers never reach the history.
func TestShortestJobFirst_ArrivalGapTerminatesRun(t *testing.T) {
	scheduler := NewShortestJobFirst()
	scheduler.AddProcess(core.NewProcess("P0", 0, 2))
	scheduler.AddProcess(core.NewProcess("P1", 5, 1))
	scheduler.AddProcess(core.NewProcess("P2", 6, 1))

	require.NoError(t, scheduler.Execute())

	history := scheduler.History()
	require.Len(t, history, 1)
	assert.Equal(t, "P0", history[0].ProcessId)
	assert.Equal(t, 2, scheduler.TotalTime())
}

func TestShortestJobFirst_EmptyAdmission(t *testing.T) {
	scheduler := NewShortestJobFirst()
	require.NoError(t, scheduler.Execute())
	assert.Empty(t, scheduler.History())
}

func TestScheduleShortestJobFirst(t *testing.T) {
	request := &requests.ScheduleRequests{Jobs: []requests.Job{
		{ProcessId: "P1", ArrivalTime: 2, BurstTime: 6},
		{ProcessId: "P2", ArrivalTime: 5, BurstTime: 2},
		{ProcessId: "P3", ArrivalTime: 1, BurstTime: 8},
		{ProcessId: "P4", ArrivalTime: 0, BurstTime: 3},
		{ProcessId: "P5", ArrivalTime: 4, BurstTime: 4},
	}}

	response, err := ScheduleShortestJobFirst(request)
	require.NoError(t, err)

	assert.Equal(t, AlgorithmShortestJobFirst, response.Algorithm)
	assert.Equal(t, 23, response.TotalTime)
	require.Len(t, response.Details, 5)
	assert.Equal(t, "P4", response.Details[0].ProcessId)
	assert.Equal(t, "P3", response.Details[4].ProcessId)
	assert.InDelta(t, 9.8, response.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 5.2, response.AverageWaitingTime, 1e-9)
}
