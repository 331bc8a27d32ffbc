// Package viz renders extracted frames in the terminal.
//
// Frames are drawn as braille dots on a [Canvas]. A [Camera] rotates XYZ
// frames with mgl64 matrices and projects them orthographically. [Model] is
// the Bubble Tea live view that steps a container on every tick.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Rebuild the engine from its layout
//	X/Y/Z - Rotate the camera (shift reverses)
//	+/-   - Zoom
//	M     - Toggle XY and XYZ frames
//	T     - Cycle color themes
//	Q     - Quit
package viz
