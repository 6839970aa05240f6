package stdlib

import (
	"github.com/leonardinius/pepl/internal/module"
)

// NewStorage builds the storage capability module: a string key-value store
// persisted by the host.
func NewStorage() module.Module {
	return module.NewTable("storage", map[string]module.Function{
		"get":    delegated("storage", "get", module.Exactly(1), 1),
		"set":    delegated("storage", "set", module.Exactly(2), 1, 2),
		"delete": delegated("storage", "delete", module.Exactly(1), 1),
		"keys":   delegated("storage", "keys", module.Exactly(0)),
	})
}

// NewLocation builds the location capability module.
func NewLocation() module.Module {
	return module.NewTable("location", map[string]module.Function{
		"current": delegated("location", "current", module.Exactly(0)),
	})
}

// NewNotifications builds the notifications capability module.
func NewNotifications() module.Module {
	return module.NewTable("notifications", map[string]module.Function{
		"send": delegated("notifications", "send", module.Exactly(2), 1, 2),
	})
}
