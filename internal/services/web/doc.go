// Package web hosts the launchpad browser front end: the project index, the
// launch detail page and the wallet connect surface.
//
// The server owns process wiring only. Page behaviour lives in the feature
// modules under modules/, composed by app.BuildRootHandler.
package web
