// Package bit defines the ternary-valued symbol that every cube position
// is built from: ON, OFF, DC (don't-care), and the two internal results of
// cube algebra, EPSILON and NULL.
//
// ON/OFF/DC are the only values a persisted, user-visible Bit may carry.
// EPSILON and NULL are produced only by Star and Sharp (see package cube)
// and must never survive into a Cube that is part of a Cover.
//
// Each Bit also carries a Kind (Input or Output) and a variable label.
// Equality and hashing are defined over (Value, Kind) only — labels are
// cosmetic and do not participate, so cubes built from renamed variables
// still compare equal by shape.
package bit
