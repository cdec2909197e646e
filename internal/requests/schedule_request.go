package requests

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}
