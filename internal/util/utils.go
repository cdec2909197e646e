package util

import (
	"fmt"

	"sched-project/internal/core"
)

// AverageTurnaroundTime sums the turnaround time over a completed history and
// divides by its length. Every process in the history must have had its
// turnaround time computed; anything else is an engine contract breach.
func AverageTurnaroundTime(history []*core.Process) (float64, error) {
	var turnAroundTimeSum int
	for _, proccess := range history {
		if !proccess.HasTurnaroundTime() {
			return 0, fmt.Errorf("%w for %s", core.ErrMissingTurnaroundTime, proccess.ProcessId)
		}
		turnAroundTimeSum += proccess.TurnaroundTime
	}
	return float64(turnAroundTimeSum) / float64(len(history)), nil
}

// AverageWaitingTime is the waiting-time counterpart of AverageTurnaroundTime.
func AverageWaitingTime(history []*core.Process) (float64, error) {
	var waitingTimeSum int
	for _, proccess := range history {
		if !proccess.HasWaitingTime() {
			return 0, fmt.Errorf("%w for %s", core.ErrMissingWaitingTime, proccess.ProcessId)
		}
		waitingTimeSum += proccess.WaitingTime
	}
	return float64(waitingTimeSum) / float64(len(history)), nil
}
