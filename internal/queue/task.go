package queue

// Task is the transient descriptor pushed onto the queue at ticket creation
// and destroyed when a worker pops it. It has no identity beyond its position
// in the list.
type Task struct {
	TicketID uint   `json:"ticket_id"`
	Subject  string `json:"subject"`
	Kind     string `json:"task_kind"`
}
