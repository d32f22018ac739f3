// Package clock provides a tiny time abstraction.
//
// Code that stamps tokens or messages depends on Clocker instead of calling
// time.Now() directly, so tests can freeze time with NewFixed.
package clock
