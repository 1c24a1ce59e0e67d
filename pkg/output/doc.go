// Package output delivers a transformed path to its sinks and reports
// problems to the user.
//
// The Renderer owns the two terminal streams: the display string is echoed
// to stdout, rendered in the Accent style unless colour is off, and
// warnings and errors go to stderr. The Dispatcher runs the sinks in their
// fixed order (clipboard, echo, directory change). A failing sink never
// stops the ones after it.
package output
