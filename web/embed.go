// Package web holds the price estimation page served by the dev server.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
