// Package engine is the rule-based state machine that drives the appliance.
//
// Every poll the engine takes at most one event (an event it raised itself,
// or else the next signal from the input sources), looks up the rule keyed by
// (current state, event) and moves to the rule's target. The handler of the
// active state then runs: its entry part once per visit, its re-entry hook
// after a self-loop, and its tick part on every poll. Unmatched events never
// pass silently; they become a synthetic error event that leads to the Error
// meta-state, from which the engine resumes on its own after a delay or on a
// fresh user event.
//
// The engine is single-threaded. Poll must be called from one goroutine;
// Snapshot may be read from any goroutine.
package engine
