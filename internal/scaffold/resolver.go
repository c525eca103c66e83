package scaffold

import (
	"path"
	"regexp"
)

// import XController ".../<stem>"
var controllerImport = regexp.MustCompile(`import\s+(\w+)\s+"[^"\n]*/([\w-]+)"`)

// ResolveFileName returns the stem of the path imported by the controller
// source. It reports false when no aliased single import is present.
func ResolveFileName(controllerSource string) (string, bool) {
	match := controllerImport.FindStringSubmatch(controllerSource)
	if match == nil {
		return "", false
	}
	return match[2], true
}

// RoutePath is the admin route of fileName inside module.
func RoutePath(module, fileName string) string {
	return path.Join("/admin", module, fileName)
}
