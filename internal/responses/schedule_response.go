package responses

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	Throughput            float64           `json:"throughput"`
	GanttChart            string            `json:"gantt_chart"`
	Details               []ProcessResponse `json:"details"`
}
