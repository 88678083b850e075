package viewcache

import (
	"fmt"

	"github.com/stagecrew/stagekit/pkg/role"
)

// GlobalScope is the ShowID stand-in for configurations not tied to a show.
const GlobalScope = "global"

// Key identifies one cached view configuration.
type Key struct {
	UserID string
	ShowID string
	Role   role.Role
}

// normalized maps an empty ShowID to the global scope so the two spellings
// hit the same entry.
func (k Key) normalized() Key {
	if k.ShowID == "" {
		k.ShowID = GlobalScope
	}
	return k
}

// String renders the key for backends that need a flat representation.
func (k Key) String() string {
	n := k.normalized()
	return fmt.Sprintf("%s:%s:%s", n.UserID, n.ShowID, n.Role)
}
