package fitz

// Each frame starts at phase 0 when its region is opened. Entering the
// always block adds 1; every throw that lands on the frame adds 2.
//
// If the try body throws, the phase becomes 2.
//   With no always block, the catch block is entered at phase 2.
//   With an always block, it is entered as 2 < 3, making the phase 3.
//     If the always block throws, the phase becomes 5; the always block
//     is not re-entered, and the catch block is entered at phase 5.
//     Otherwise the catch block is entered at phase 3.
// If the try body does not throw:
//   With no always block, the catch block is skipped as the phase is 0.
//   With an always block, it is entered as 0 < 3, making the phase 1.
//     If the always block throws, the phase becomes 3; the always block
//     is not re-entered, and the catch block is entered at phase 3.
//     Otherwise the catch block is skipped at phase 1.
//
// So the reachable phases are exactly 0, 1, 2, 3 and 5: the always block
// may only run while the phase is below 3, and the catch block runs only
// when the phase is above 1.

func throwPhase(phase int) int { return phase + 2 }

func alwaysPhase(phase int) int { return phase + 1 }

func runsAlways(phase int) bool { return phase < 3 }

func runsCatch(phase int) bool { return phase > 1 }
