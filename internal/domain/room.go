package domain

type RoomID string

// WaitingEntry is the minimal state kept for a session knocking on a
// locked room: just the name the host sees while deciding.
type WaitingEntry struct {
	Name string `json:"name"`
}
