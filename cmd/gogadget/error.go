package main

import "errors"

var (
	// ErrNoSuchEntity occurs when a name given on the command line matches
	// neither a function nor a configuration of the gadget.
	ErrNoSuchEntity = errors.New("no such function or configuration")

	// ErrNoState occurs when a command needs the gadget tree before the
	// program was set up.
	ErrNoState = errors.New("gadget tree not available")
)
