// Package server runs the application's HTTP transport and reports how the
// run ended.
//
// [Server.Run] performs the startup sequence (bind, build routes, resolve the
// bound address, serve) and returns either the [Completed] outcome or a
// [*StartupError] naming the step that failed. [LogOutcome] writes the
// terminal log line and maps the result to a process exit code.
package server
