package catalog

import (
	"embed"
	"io/fs"
)

//go:embed cows/*.cow
var builtinFS embed.FS

// Builtin returns the source of templates embedded in the binary.
func Builtin() Source {
	sub, err := fs.Sub(builtinFS, "cows")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return Source{Origin: OriginBuiltin, Root: "builtin:", FS: sub}
}
