// SPDX-License-Identifier: MIT
package oneloop

import "math"

// ToFeynman converts a result from the engine normalization, in which
// the overall loop factor has been divided out, to the textbook
// Feynman normalization: multiply every Laurent coefficient by
// −1/(16π²).
const ToFeynman = -1.0 / (16.0 * math.Pi * math.Pi)
