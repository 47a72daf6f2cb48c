package models

import (
	"fmt"

	"github.com/dalesbridge/chronicle/internal/common"
)

// CardIcon identifies the pictogram shown on a township card. Icons are
// stored as strings, so saves validate the name up front rather than
// falling back silently at render time.
type CardIcon string

const (
	IconChurch    CardIcon = "church"
	IconSchool    CardIcon = "school"
	IconMill      CardIcon = "mill"
	IconBridge    CardIcon = "bridge"
	IconFarm      CardIcon = "farm"
	IconMine      CardIcon = "mine"
	IconInn       CardIcon = "inn"
	IconRiver     CardIcon = "river"
	IconHouse     CardIcon = "house"
	IconMonument  CardIcon = "monument"
	IconRailway   CardIcon = "railway"
	IconGraveyard CardIcon = "graveyard"
)

var knownIcons = map[CardIcon]struct{}{
	IconChurch: {}, IconSchool: {}, IconMill: {}, IconBridge: {},
	IconFarm: {}, IconMine: {}, IconInn: {}, IconRiver: {},
	IconHouse: {}, IconMonument: {}, IconRailway: {}, IconGraveyard: {},
}

// ParseCardIcon validates an icon name. Unknown names are rejected with
// common.ErrValidation so bad data never reaches the store.
func ParseCardIcon(name string) (CardIcon, error) {
	icon := CardIcon(name)
	if _, ok := knownIcons[icon]; !ok {
		return "", fmt.Errorf("%w: unknown card icon %q", common.ErrValidation, name)
	}
	return icon, nil
}
