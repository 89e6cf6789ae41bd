// Package platform implements the capability interfaces the compositing
// loop depends on: cursor sampling, display topology, and the built-in
// cursor glyph raster.
//
// The implementations here are the portable desktop ones, built on
// robotgo (cursor position) and kbinani/screenshot (display bounds). They
// deliberately stay narrow: anything OS-specific beyond what these
// libraries expose (true system-cursor introspection, refresh-rate
// queries, layered-window presentation) belongs in a platform-specific
// implementation of the same interfaces.
package platform
