package bridge

import (
	"sort"
	"strconv"
	"strings"

	"github.com/amimof/huego"

	"github.com/rektdeckard/tinto/internal/inventory"
)

const maxBri = 254

// Group and scene types as reported by the bridge
const (
	groupTypeRoom  = "Room"
	groupTypeZone  = "Zone"
	sceneTypeGroup = "GroupScene"
)

// buildSnapshot converts raw bridge resources into an inventory snapshot.
// Lights, rooms and zones keep bridge ID order; scenes are sorted by name.
func buildSnapshot(bridgeID string, lights []huego.Light, groups []huego.Group, scenes []huego.Scene) *inventory.Snapshot {
	sort.SliceStable(lights, func(i, j int) bool { return lights[i].ID < lights[j].ID })
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })

	all := make([]inventory.Light, 0, len(lights))
	byID := make(map[string]inventory.Light, len(lights))
	for _, l := range lights {
		light := convertLight(l)
		all = append(all, light)
		byID[light.ID] = light
	}

	scenesByGroup := make(map[string][]inventory.Scene)
	for _, s := range scenes {
		if s.Type != sceneTypeGroup || s.Group == "" {
			continue
		}
		scenesByGroup[s.Group] = append(scenesByGroup[s.Group], inventory.Scene{
			ID:      s.ID,
			Name:    s.Name,
			GroupID: s.Group,
		})
	}
	for _, list := range scenesByGroup {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}

	var rooms []inventory.Room
	var zones []inventory.Zone
	for _, g := range groups {
		id := strconv.Itoa(g.ID)
		members := groupLights(g, byID)
		on := g.GroupState != nil && g.GroupState.AnyOn

		switch g.Type {
		case groupTypeRoom:
			rooms = append(rooms, inventory.Room{
				ID:     id,
				Name:   g.Name,
				On:     on,
				Scenes: scenesByGroup[id],
				Lights: members,
			})
		case groupTypeZone:
			zones = append(zones, inventory.Zone{
				ID:     id,
				Name:   g.Name,
				On:     on,
				Lights: members,
			})
		}
	}

	return inventory.NewSnapshot(bridgeID, rooms, zones, all)
}

func convertLight(l huego.Light) inventory.Light {
	light := inventory.Light{
		ID:            strconv.Itoa(l.ID),
		Name:          l.Name,
		SupportsColor: supportsColor(l.Type),
	}
	if l.State != nil {
		light.On = l.State.On
		light.Reachable = l.State.Reachable
		light.Brightness = float64(l.State.Bri) / maxBri * 100
	}
	return light
}

// supportsColor matches "Color light" and "Extended color light" but not
// "Color temperature light"
func supportsColor(lightType string) bool {
	return strings.Contains(strings.ToLower(lightType), "color light")
}

func groupLights(g huego.Group, byID map[string]inventory.Light) []inventory.Light {
	members := make([]inventory.Light, 0, len(g.Lights))
	for _, id := range g.Lights {
		if l, ok := byID[id]; ok {
			members = append(members, l)
		}
	}
	return members
}
