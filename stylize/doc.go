// Package stylize implements the CPU reference path of the cel-shaded
// pixel-art post-process pipeline: the perceptual color transform, the cel
// luminance quantizer, the depth/normal edge detector, and the box-filter
// pixel-art upscaler.
//
// Every function here is pure: per-pixel inputs plus an immutable parameter
// record in, a value out, with no shared mutable state between invocations.
// The GPU path under engine/renderer mirrors these functions structurally in
// WGSL; this package is the ground truth the GPU shaders are written against.
package stylize
