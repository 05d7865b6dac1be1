// Package ui implements the interactive catalog browser.
//
// The browser is a [bubbletea] program over the local store: a first view
// lists every indexed audiobook, selecting one lists the files in its source
// directory. It is an admin surface for checking what a scan actually
// ingested, not a playback client.
package ui
