package transforms

// A Transform advances an orbit by one step.
//
// z is the current orbit value; c is the plane coordinate the orbit was
// started for. Transforms that ignore c (such as Julia) run the same
// iteration regardless of where the orbit started.
type Transform interface {
	Next(z, c complex128) complex128
}
