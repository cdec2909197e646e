package schedulers

import (
	"sched-project/internal/core"
	"sched-project/internal/report"
	"sched-project/internal/responses"
	"sched-project/internal/util"
)

const (
	AlgorithmFirstComeFirstServe = "fcfs"
	AlgorithmShortestJobFirst    = "sjf"
)

func generateResponse(algorithm string, history []*core.Process, totalTime int) (responses.ScheduleResponse, error) {
	response := responses.ScheduleResponse{
		Algorithm: algorithm,
		TotalTime: totalTime,
		Details:   make([]responses.ProcessResponse, 0, len(history)),
	}
	if len(history) == 0 {
		return response, nil
	}

	for _, proccess := range history {
		response.Details = append(response.Details, generateProcessDetails(proccess))
	}

	averageTurnaround, err := util.AverageTurnaroundTime(history)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	averageWaiting, err := util.AverageWaitingTime(history)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response.AverageTurnAroundTime = averageTurnaround
	response.AverageWaitingTime = averageWaiting
	response.Throughput = float64(len(history)) / float64(totalTime)
	response.GanttChart = report.GanttString(history)
	return response, nil
}

func generateProcessDetails(proccess *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      proccess.ProcessId,
		ArrivalTime:    proccess.ArrivalTime,
		BurstTime:      proccess.BurstTime,
		CompletionTime: proccess.CompletionTime,
		TurnAroundTime: proccess.TurnaroundTime,
		WaitingTime:    proccess.WaitingTime,
	}
}
