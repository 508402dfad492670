package output

// Recorder receives roster operation outcomes. outcome is "ok" or a domain
// error code.
type Recorder interface {
	RecordOperation(operation, outcome string)
	SetParticipants(activity string, count int)
}
