// Package vecmath holds small numeric helpers over slices and dense buffers.
package vecmath
