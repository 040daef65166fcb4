// Package config loads inventory sorting configurations.
//
// A configuration is a line-oriented text file. Lines are case-insensitive
// and words are separated by single spaces:
//
//	a1 locked             lock a slot (any placement pattern works)
//	b2 ore                place "ore" items on b2
//	d tools               place tools along row d
//	autoreplace pickaxe   auto-replace pickaxes
//	autoreplace nothing   disable auto-replace
//	disablemiddleclick    turn middle-click sorting off
//	debug                 verbose logging
//
// Lines that fit none of these shapes are ignored. Keywords that look like
// rules but are unknown to the category tree are collected in
// Config.InvalidKeywords instead of failing the load.
//
// Load and LoadFile return immutable snapshots. Store keeps the current
// snapshot for concurrent readers and serializes reloads.
package config
