package constants

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusClosed     TicketStatus = "closed"
)

var statusLabels = map[TicketStatus]string{
	StatusOpen:       "Abierto",
	StatusInProgress: "En Progreso",
	StatusClosed:     "Cerrado",
}

// Label returns the display form used on the wire. Unknown statuses pass
// through unchanged since status is free-form text.
func (s TicketStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
