// Package blizzard finds the fastest way across a walled valley whose
// interior is swept by hazards that move one cell per minute and wrap around.
//
// What it offers:
//
//   - gridgraph/ — the immutable valley: walls, entry, exit, hazard placements, text parser
//   - hazard/    — closed-form hazard occupancy per minute and its period lcm(W, H)
//   - bfs/       — breadth-first search over (cell, minute mod period) states
//   - trip/      — multi-leg trips where each leg departs when the last one arrived
//   - cmd/valley, cmd/valleyview — CLI report and terminal replay
//
// Quick ASCII example (6×4 interior, entry top-left, exit bottom-right):
//
//	#.######
//	#>>.<^<#
//	#.<..<<#
//	#>v.><>#
//	#<^v^^>#
//	######.#
//
// crosses in 18 minutes; there, back and there again takes 54.
//
//	go install github.com/katalvlaran/blizzard/cmd/valley@latest
package blizzard
