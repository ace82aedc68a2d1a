// Package web embeds the front-end page served at "/".
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
