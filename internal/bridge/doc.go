// Package bridge adapts a Philips Hue bridge to the dashboard.
//
// Client wraps the huego client. Fetch reads lights, groups, scenes and the
// bridge config concurrently and converts them into an inventory.Snapshot;
// Execute sends dispatch commands:
//
//	ToggleGroup  PUT /groups/<id>/action {"on": ...}
//	ToggleLight  PUT /lights/<id>/state  {"on": ...}
//	Dim          PUT /lights/<id>/state  {"bri_inc": ...}
//	Signal       PUT /groups/<id>/action {"alert": "lselect"}
//	RecallScene  PUT /groups/<id>/action {"scene": ...}
//
// Errors are classified into a BridgeError so callers can tell
// authentication problems from an unreachable bridge.
package bridge
