package schedulers

import (
	"sched-project/internal/core"
	"sched-project/internal/requests"
	"sched-project/internal/responses"
	"sched-project/internal/util"
)

// FirstComeFirstServe runs admitted processes to completion in admission
// order. There is no arrival gating at decision time: the caller is expected
// to admit processes in arrival order, as the classical definition assumes.
type FirstComeFirstServe struct {
	running    *core.Process
	readyQueue []*core.Process
	history    []*core.Process
	totalTime  int
}

func NewFirstComeFirstServe() *FirstComeFirstServe {
	return &FirstComeFirstServe{}
}

// AddProcess admits a process: the first one becomes the running process,
// every later one goes to the back of the ready queue.
func (s *FirstComeFirstServe) AddProcess(p *core.Process) {
	if s.running == nil {
		s.running = p
	} else {
		s.readyQueue = append(s.readyQueue, p)
	}
}

// Execute runs the simulation to completion, populating the history.
func (s *FirstComeFirstServe) Execute() error {
	for s.running != nil {
		if err := s.updateRunningProcess(); err != nil {
			return err
		}
		s.history = append(s.history, s.running)
		if len(s.readyQueue) > 0 {
			s.running = s.readyQueue[0]
			s.readyQueue = s.readyQueue[1:]
		} else {
			s.running = nil
		}
	}
	return nil
}

// updateRunningProcess advances the clock by the running process's burst time
// and fills in its three timing fields, strictly in order.
func (s *FirstComeFirstServe) updateRunningProcess() error {
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

// History returns the completed processes in execution order.
func (s *FirstComeFirstServe) History() []*core.Process {
	return s.history
}

// TotalTime returns the final value of the simulated clock.
func (s *FirstComeFirstServe) TotalTime() int {
	return s.totalTime
}

func (s *FirstComeFirstServe) CalcAvgTurnaroundTime() (float64, error) {
	return util.AverageTurnaroundTime(s.history)
}

func (s *FirstComeFirstServe) CalcAvgWaitingTime() (float64, error) {
	return util.AverageWaitingTime(s.history)
}

// ScheduleFirstComeFirstServe runs the FCFS engine over the requested jobs
// and packages the history into a schedule response.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	scheduler := NewFirstComeFirstServe()
	for _, job := range request.Jobs {
		scheduler.AddProcess(core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime))
	}
	if err := scheduler.Execute(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(AlgorithmFirstComeFirstServe, scheduler.History(), scheduler.TotalTime())
}
