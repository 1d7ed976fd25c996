// Package calc implements §4.H: pre-slice model-bounds validation,
// post-plotter move-bounds validation, and the post-optimization
// integration that turns a Command stream into CalculatedValues (total
// plastic volume/length/weight and print time).
//
// Why integration lives here and not in optimizer: SlowDownLayer (§4.G)
// and CalculatedValues both need the same per-segment time model (segment
// length over movement_speed, plus delays) — keeping that model in one
// place (timeOfSegment) means the two can never silently disagree on how
// long a move takes.
package calc
