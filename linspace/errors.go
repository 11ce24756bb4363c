package linspace

import "errors"

// Error policy (shared across numspace):
//   - Construction-time arithmetic errors are programmer errors and panic
//     immediately with a sentinel wrapped via %w — a malformed call must
//     not produce a sequence that silently emits wrong values.
//   - Iteration-time operations are total and never panic.
//   - Branch on sentinels with errors.Is, never on message strings.

// ErrZeroSteps indicates an inclusive construction with steps == 0.
// An inclusive range divides its span by steps-1; zero steps therefore
// has no meaningful interpretation and fails fast at construction.
// Usage: recover and errors.Is(err, ErrZeroSteps).
var ErrZeroSteps = errors.New("linspace: inclusive range requires steps >= 1")
