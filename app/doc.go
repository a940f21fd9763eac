// Package app is the web front of the boilerplate: the chi router, the root
// layout and the page handler that resolves the server-side session before
// rendering.
//
// Every page is rendered as Layout(meta, session) with the page as its
// children. Layout writes the document head (title "SaaS Boilerplate" by
// default) and wraps the body in Providers, which exposes the session user
// and expiry to client scripts.
package app
