// meta/meta.go
package meta

// SIZE defines the default board side length.
const SIZE = 8

// SHAPE defines the default board shape: c (square), d (donut), t (clover) or 8 (eight).
const SHAPE = "c"

// GAMES defines the number of games per match-up in experiments.
const GAMES = 10

// PARALLEL defines the number of games played at once in experiments.
const PARALLEL = 4

// MAX_TURNS bounds the length of a game. 0 leaves the bound to the engine, which
// covers every board since each move burns a cell.
const MAX_TURNS = 0

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments/results"

// LOG_LEVEL is the default zerolog level.
const LOG_LEVEL = "info"
