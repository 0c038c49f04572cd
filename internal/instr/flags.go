package instr

// Flags are the execution flags: updated on every value
// write to the stack, and read by if/while conditions to decide branching.
type Flags struct {
	Zero     bool
	Carry    bool
	Overflow bool
	Sign     bool
}
