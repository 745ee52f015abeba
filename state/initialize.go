package state

import (
	"time"

	"github.com/google/uuid"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	env := &LocalEnv{start: time.Now()}
	// time ordered ids sort naturally in report and output names
	if id, err := uuid.NewV7(); err == nil {
		env.Session = id
	} else {
		env.Session = uuid.New()
	}
	return env
}
