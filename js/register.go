package js

import "github.com/ulight-go/ulight"

// init wires this package's Highlight function into the root registry,
// the way image.RegisterFormat or database/sql.Register let a concrete
// implementation register itself with a generic dispatcher without that
// dispatcher importing the implementation back.
func init() {
	ulight.RegisterLanguage("js", Highlight)
	ulight.RegisterLanguage("jsx", Highlight)
}
