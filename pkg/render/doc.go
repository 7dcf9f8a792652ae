// Package render defines the renderer contract shared by the HTML, text and
// terminal prompt renderers, plus a name-keyed registry to pick one at run
// time.
package render
