// Package tui implements the tinto dashboard on top of Bubble Tea.
//
// The model owns no navigation logic of its own. Each key press is
// classified into an Intent, applied to the nav.Registry and, when it asks
// for a device action, turned into a dispatch.Command by the planner and
// handed to the dispatcher without waiting for the result. A tick every
// 250ms reloads the latest inventory snapshot and redraws.
//
// Layout, top to bottom:
//   - tab bar (AREA, LGTS, SENS, RTNS) with hotkeys underlined
//   - ROOMS and ZONES lists beside the selected room's SCNS and LGTS
//   - status bar with entity counts, bridge identity and the last refresh error
//   - key help
package tui
