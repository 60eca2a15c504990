/*
Package observability provides tools for monitoring the cellsweep engine.

It turns the engine lifecycle hooks into Prometheus metrics and structured log
lines, and lets several hook sets be combined into one.
*/
package observability
