package core

import "errors"

var (
	// ErrInvalidCompletionTime signals a broken engine invariant: the clock
	// only ever accumulates burst times, so a completion time below the burst
	// time means the scheduling arithmetic went wrong.
	ErrInvalidCompletionTime = errors.New("completion time is smaller than the burst time")
	ErrMissingTurnaroundTime = errors.New("turnaround time is missing")
	ErrMissingWaitingTime    = errors.New("waiting time is missing")
)

// Process is one schedulable unit. Identity, arrival time and burst time are
// fixed at creation; the three derived timing fields are filled in strictly in
// order (completion, turnaround, waiting) by the engine that runs it.
type Process struct {
	ProcessId   string
	ArrivalTime int
	BurstTime   int

	CompletionTime int
	TurnaroundTime int
	WaitingTime    int

	hasCompletionTime bool
	hasTurnaroundTime bool
	hasWaitingTime    bool
}

func NewProcess(processId string, arrivalTime, burstTime int) *Process {
	return &Process{
		ProcessId:   processId,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
	}
}

// SetCompletionTime records when the process finished its burst. The check is
// deliberately completionTime >= BurstTime rather than the stricter
// ArrivalTime+BurstTime: the clock counts accumulated CPU time across the
// whole run, not wall time since arrival.
func (p *Process) SetCompletionTime(completionTime int) error {
	if completionTime < p.BurstTime {
		return ErrInvalidCompletionTime
	}
	p.CompletionTime = completionTime
	p.hasCompletionTime = true
	return nil
}

// SetTurnaroundTime computes completion - arrival. No-op until the completion
// time has been set.
func (p *Process) SetTurnaroundTime() {
	if !p.hasCompletionTime {
		return
	}
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.hasTurnaroundTime = true
}

// SetWaitingTime computes turnaround - burst. No-op until the turnaround time
// has been set.
func (p *Process) SetWaitingTime() {
	if !p.hasTurnaroundTime {
		return
	}
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.hasWaitingTime = true
}

func (p *Process) HasCompletionTime() bool { return p.hasCompletionTime }
func (p *Process) HasTurnaroundTime() bool { return p.hasTurnaroundTime }
func (p *Process) HasWaitingTime() bool    { return p.hasWaitingTime }
