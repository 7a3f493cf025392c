// Package server provides the HTTP layer: echo server, routes, and handlers
// for feedback intake, queries, summaries, and workflow updates.
package server
