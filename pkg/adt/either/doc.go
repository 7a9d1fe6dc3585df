// Package either provides Either[L, R], an immutable disjoint union that
// holds exactly one of two typed alternatives. By convention Right carries
// the success value and Left the error value; the type itself does not
// enforce this.
//
// Highlights:
// - Left/Right/Cond: construct an Either
// - IsLeft/IsRight/Swap: inspect and flip sides
// - Fold/Merge: collapse both sides into one value
// - JoinLeft/JoinRight: flatten a nested Either on one side only
// - ToLeft/ToRight: lift an option.Option into an Either
// - Left()/Right(): one-sided projection views (see LeftProjection,
//   RightProjection) that make combinators act only when the active side
//   matches
//
// Projections are transient per-call views; they carry the viewed Either
// and nothing else, and are meant to be discarded after the call chain.
package either
