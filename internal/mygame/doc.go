// Package mygame holds Go bindings for monster.fbs in the shape the
// schema compiler emits: typed accessors over flatbuffers.Table, builder
// helpers, and a verifier per table.
package mygame
