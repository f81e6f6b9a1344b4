// Package style holds the box-model state edited by boxlab: one Record per
// demo element, each owned by its own Cell and mutated only through a single
// generic field update.
package style
