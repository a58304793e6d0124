package constants

// TaskKindTicketCreated identifies the notification task enqueued after a
// ticket is created.
const TaskKindTicketCreated = "ticket_created"
