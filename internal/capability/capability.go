// Package capability holds the stable (module, function) -> (cap_id, fn_id)
// table shared by the capability modules, the host dispatcher and any code
// generator emitting host calls. Published ids never change.
package capability

import (
	"golang.org/x/exp/slices"
)

// Version of the id table.
const Version = 1

const (
	CapHTTP          uint32 = 1
	CapStorage       uint32 = 2
	CapLocation      uint32 = 3
	CapNotifications uint32 = 4
	// CapCredential is resolved by the host itself; guest code never calls it.
	CapCredential uint32 = 5
)

const (
	HTTPGet    uint32 = 1
	HTTPPost   uint32 = 2
	HTTPPut    uint32 = 3
	HTTPPatch  uint32 = 4
	HTTPDelete uint32 = 5

	StorageGet    uint32 = 1
	StorageSet    uint32 = 2
	StorageDelete uint32 = 3
	StorageKeys   uint32 = 4

	LocationCurrent uint32 = 1

	NotificationsSend uint32 = 1

	CredentialGet uint32 = 1
)

type name struct {
	module   string
	function string
}

type id struct {
	capID uint32
	fnID  uint32
}

var entries = []struct {
	name
	id
}{
	{name{"http", "get"}, id{CapHTTP, HTTPGet}},
	{name{"http", "post"}, id{CapHTTP, HTTPPost}},
	{name{"http", "put"}, id{CapHTTP, HTTPPut}},
	{name{"http", "patch"}, id{CapHTTP, HTTPPatch}},
	{name{"http", "delete"}, id{CapHTTP, HTTPDelete}},

	{name{"storage", "get"}, id{CapStorage, StorageGet}},
	{name{"storage", "set"}, id{CapStorage, StorageSet}},
	{name{"storage", "delete"}, id{CapStorage, StorageDelete}},
	{name{"storage", "keys"}, id{CapStorage, StorageKeys}},

	{name{"location", "current"}, id{CapLocation, LocationCurrent}},

	{name{"notifications", "send"}, id{CapNotifications, NotificationsSend}},
}

var moduleNames = []string{"http", "storage", "location", "notifications"}

var (
	byName = make(map[name]id, len(entries))
	byID   = make(map[id]name, len(entries))
)

func init() {
	for _, e := range entries {
		byName[e.name] = e.id
		byID[e.id] = e.name
	}
}

// ResolveIDs maps a capability module function to its wire ids. Pure modules
// and unknown names resolve to ok == false.
func ResolveIDs(module, function string) (capID, fnID uint32, ok bool) {
	i, ok := byName[name{module, function}]
	return i.capID, i.fnID, ok
}

// Lookup is the reverse of ResolveIDs.
func Lookup(capID, fnID uint32) (module, function string, ok bool) {
	n, ok := byID[id{capID, fnID}]
	return n.module, n.function, ok
}

func IsCapabilityModule(module string) bool {
	return slices.Contains(moduleNames, module)
}

// ModuleNames returns all capability module names.
func ModuleNames() []string {
	return slices.Clone(moduleNames)
}

// Functions returns the function names of a capability module in fn_id order.
func Functions(module string) []string {
	var fns []string
	for _, e := range entries {
		if e.module == module {
			fns = append(fns, e.function)
		}
	}
	return fns
}
