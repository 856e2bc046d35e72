// Package delivery models outstanding truck dispatches and the arrival events
// emitted when their simulated travel time has elapsed.
package delivery
