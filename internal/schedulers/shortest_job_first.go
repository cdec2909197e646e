package schedulers

import (
	"sort"

	"sched-project/internal/core"
	"sched-project/internal/requests"
	"sched-project/internal/responses"
	"sched-project/internal/util"
)

// ShortestJobFirst is the non-preemptive SJF engine. At every decision point
// it picks, among the queued processes that have already arrived by the
// simulated clock, the one with the smallest burst time.
//
// The clock never fast-forwards to a future arrival: if no queued process has
// arrived when a selection is due, the run terminates and the remaining
// processes are dropped from the history.
type ShortestJobFirst struct {
	running    *core.Process
	readyQueue []*core.Process
	history    []*core.Process
	totalTime  int
}

func NewShortestJobFirst() *ShortestJobFirst {
	return &ShortestJobFirst{}
}

// AddProcess admits a process to the back of the ready queue.
func (s *ShortestJobFirst) AddProcess(p *core.Process) {
	s.readyQueue = append(s.readyQueue, p)
}

// setup sorts the ready queue by arrival time and pops the earliest arrival
// as the initial running process. One-time initialization, not part of the
// steady-state selection rule.
func (s *ShortestJobFirst) setup() {
	sort.SliceStable(s.readyQueue, func(i, j int) bool {
		return s.readyQueue[i].ArrivalTime < s.readyQueue[j].ArrivalTime
	})
	if len(s.readyQueue) > 0 {
		s.running = s.readyQueue[0]
		s.readyQueue = s.readyQueue[1:]
	}
}

// Execute runs the simulation to completion, populating the history.
func (s *ShortestJobFirst) Execute() error {
	s.setup()
	for s.running != nil {
		if err := s.updateRunningProcess(); err != nil {
			return err
		}
		s.history = append(s.history, s.running)
		s.setHighestPriorityProcess()
	}
	return nil
}

func (s *ShortestJobFirst) updateRunningProcess() error {
	if s.running == nil {
		return nil
	}
	s.totalTime += s.running.BurstTime
	if err := s.running.SetCompletionTime(s.totalTime); err != nil {
		return err
	}
	s.running.SetTurnaroundTime()
	s.running.SetWaitingTime()
	return nil
}

// setHighestPriorityProcess selects the next running process: the first
// minimum-burst process among those whose arrival time is within the current
// clock. Ties resolve to whichever minimum sits earlier in the queue. When no
// queued process has arrived yet, running is cleared and the run ends.
func (s *ShortestJobFirst) setHighestPriorityProcess() {
	shortest := -1
	for i, p := range s.readyQueue {
		if p.ArrivalTime > s.totalTime {
			continue
		}
		if shortest == -1 || p.BurstTime < s.readyQueue[shortest].BurstTime {
			shortest = i
		}
	}
	if shortest == -1 {
		s.running = nil
		return
	}
	s.running = s.readyQueue[shortest]
	s.readyQueue = append(s.readyQueue[:shortest], s.readyQueue[shortest+1:]...)
}

// History returns the completed processes in execution order.
func (s *ShortestJobFirst) History() []*core.Process {
	return s.history
}

// TotalTime returns the final value of the simulated clock.
func (s *ShortestJobFirst) TotalTime() int {
	return s.totalTime
}

func (s *ShortestJobFirst) CalcAvgTurnaroundTime() (float64, error) {
	return util.AverageTurnaroundTime(s.history)
}

func (s *ShortestJobFirst) CalcAvgWaitingTime() (float64, error) {
	return util.AverageWaitingTime(s.history)
}

// ScheduleShortestJobFirst runs the SJF engine over the requested jobs and
// packages the history into a schedule response.
func ScheduleShortestJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	scheduler := NewShortestJobFirst()
	for _, job := range request.Jobs {
		scheduler.AddProcess(core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime))
	}
	if err := scheduler.Execute(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(AlgorithmShortestJobFirst, scheduler.History(), scheduler.TotalTime())
}
