package stdlib

import (
	"github.com/leonardinius/pepl/internal/module"
)

// NewHTTP builds the http capability module.
//
//	get(url, options?)          post(url, body, options?)
//	put(url, body, options?)    patch(url, body, options?)
//	delete(url, options?)
func NewHTTP() module.Module {
	return module.NewTable("http", map[string]module.Function{
		"get":    delegated("http", "get", module.Between(1, 2), 1),
		"post":   delegated("http", "post", module.Between(2, 3), 1, 2),
		"put":    delegated("http", "put", module.Between(2, 3), 1, 2),
		"patch":  delegated("http", "patch", module.Between(2, 3), 1, 2),
		"delete": delegated("http", "delete", module.Between(1, 2), 1),
	})
}
