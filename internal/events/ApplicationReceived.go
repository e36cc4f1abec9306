package events

import "github.com/avikm/job-board/internal/entities"

var ApplicationReceivedTopic = "ApplicationReceivedEvent"

type ApplicationReceived struct {
	Application entities.Application
	JobID       uint
	EmployerID  uint
}
