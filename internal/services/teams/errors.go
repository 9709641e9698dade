package teams

// TeamsError is a custom error type for resolution errors
type TeamsError string

// Error implements the error interface
func (e TeamsError) Error() string {
	return string(e)
}

const (
	// ErrInsufficientPlayers means empty slots remain and no teams were formed
	ErrInsufficientPlayers TeamsError = "not enough players to fill every role"
	ErrNilConfig           TeamsError = "config cannot be nil"
	ErrNilRandom           TeamsError = "random source cannot be nil"
)
