// Package terminal wraps a tcell screen behind the cell model the renderer draws into.
//
// The renderer fills a row-major []Cell and hands it to Flush once per frame;
// only cells that changed since the previous flush are sent to the screen.
package terminal
