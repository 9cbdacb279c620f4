// Package style owns the visual contract of rendered TAML.
//
// ClassFor maps a tag to its stable class name and Combine joins class
// lists; together they define the class names external stylesheets select
// on:
//
//	style-<color>            <red>          -> style-red
//	style-bright-<color>     <brightRed>    -> style-bright-red
//	style-bg-<color>         <bgBlue>       -> style-bg-blue
//	style-bg-bright-<color>  <bgBrightBlue> -> style-bg-bright-blue
//	style-<textstyle>        <bold>         -> style-bold
//
// plus RootClass on the wrapper of every rendered document and ErrorClass on
// the parse-error placeholder.
//
// A Theme assigns adaptive light/dark colors to the 16 color tags. It is
// loaded from YAML (an embedded default ships with the binary) and produces
// lipgloss styles for terminal output and a CSS stylesheet for HTML output.
package style
