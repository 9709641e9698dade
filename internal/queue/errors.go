package queue

// QueueError is a comparable error type so errors.Is works on the constants
type QueueError string

// Error implements the error interface
func (e QueueError) Error() string {
	return string(e)
}

const (
	ErrAlreadyQueued QueueError = "player is already in the queue"
	ErrNotQueued     QueueError = "player is not in the queue"
	ErrInvalidRole   QueueError = "invalid role"
)
