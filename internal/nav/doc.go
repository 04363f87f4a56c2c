// Package nav implements the dashboard's navigation model.
//
// Each tab owns a ViewState holding its drill-down level and one optional
// cursor per list. The Areas tab drills down from rooms through zones and
// scenes to a light panel:
//
//	RoomList -> ZoneList -> SceneList -> LightPanel
//
// Cursors are plain indices re-checked against the current inventory
// snapshot on every move and every lookup, so an inventory that shrinks
// between refreshes yields "nothing selected" rather than a wrong entity.
//
// On the LightPanel the view keys move the light cursor. PrevView only
// leaves the panel once the light cursor is empty or on the first light.
//
// Tabs other than Areas have no drill-down; operations on them return
// Unsupported, which callers treat as a no-op.
package nav
