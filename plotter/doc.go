// Package plotter is §4.F's Move-Chain Assembler: it walks every object's
// ordered slice stack and turns each slice's chains (already ordered by
// slicepass.OrderChains) into the flat Command stream the optimizer and
// emitter consume.
//
// Grounded on the reference's MoveChain::create_commands and Plotter::plot
// (gladius_core/src/plotter.rs): a MoveChain becomes a travel to its start
// (with retraction when the travel exceeds minimum_retract_distance and an
// unretract on arrival) followed by one Command per Move — MoveTo for
// Travel, MoveAndExtrude otherwise, with a SetState speed preamble whenever
// an extruding move's move_type differs from the last recorded one (set by
// the previous preamble, or to Travel by a Travel move inside a chain, so
// the first extruding move after such a travel always gets a preamble).
// LayerChange and
// ChangeObject commands are emitted layer-index-aligned across objects, one
// object's full layer before the next (§8 scenario 2).
package plotter
