package draftroom

import (
	"fmt"
	"time"
)

// Room is an ephemeral draft session. The id is a short random token
// shared out-of-band with participants; there is no deletion path.
type Room struct {
	ID            string
	Name          string
	CreatorName   string
	MaxTeams      int
	StatPackageID string
	CreatedAt     time.Time
}

func (r Room) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("room id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("room name is required")
	}
	if r.CreatorName == "" {
		return fmt.Errorf("room creator name is required")
	}
	if r.MaxTeams < 2 {
		return fmt.Errorf("room must allow at least two teams")
	}
	if r.StatPackageID == "" {
		return fmt.Errorf("room stat package is required")
	}

	return nil
}
