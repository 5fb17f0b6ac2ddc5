package runState

import "genosplit/api/models/constants"

const (
	Queued  constants.RunState = "Queued"
	Running constants.RunState = "Running"
	Done    constants.RunState = "Done"
	Error   constants.RunState = "Error"
)
