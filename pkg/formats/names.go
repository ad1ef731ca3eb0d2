package formats

import (
	"fmt"
	"strings"
)

// ItemNames maps item IDs to display names.
var ItemNames = []string{
	"Empty",                        // 0
	"Knife",                        // 1
	"Handgun (Leon)",               // 2
	"Handgun (Claire)",             // 3
	"Custom Handgun",               // 4
	"Magnum",                       // 5
	"Custom Magnum",                // 6
	"Shotgun",                      // 7
	"Custom Shotgun",               // 8
	"Grenade Launcher (Explosive)", // 9
	"Grenade Launcher (Flame)",     // 10
	"Grenade Launcher (Acid)",      // 11
	"Bowgun",                       // 12
	"Colt SAA",                     // 13
	"Sparkshot",                    // 14
	"Sub Machinegun",               // 15
	"Flamethrower",                 // 16
	"Rocket Launcher",              // 17
	"Gatling Gun",                  // 18
	"Beretta",                      // 19
	"Handgun Ammo",                 // 20
	"Shotgun Shells",               // 21
	"Magnum Rounds",                // 22
	"Fuel Tank",                    // 23
	"Explosive Rounds",             // 24
	"Flame Rounds",                 // 25
	"Acid Rounds",                  // 26
	"SMG Ammo",                     // 27
	"SS Battery",                   // 28
	"Bowgun Darts",                 // 29
	"Ink Ribbon",                   // 30
	"Small Key",                    // 31
	"Handgun Parts",                // 32
	"Magnum Parts",                 // 33
	"Shotgun Parts",                // 34
	"First Aid Spray",              // 35
	"Anti Virus Bomb",              // 36
	"Chemical AC-W24",              // 37
	"Green Herb",                   // 38
	"Red Herb",                     // 39
	"Blue Herb",                    // 40
	"Mixed Herbs (G+G)",            // 41
	"Mixed Herbs (R+G)",            // 42
	"Mixed Herbs (B+G)",            // 43
	"Mixed Herbs (G+G+G)",          // 44
	"Mixed Herbs (G+G+B)",          // 45
	"Mixed Herbs (R+G+B)",          // 46
	"Lighter",                      // 47
	"Lockpick",                     // 48
	"Photo (Sherry)",               // 49
	"Valve Handle",                 // 50
	"Red Jewel",                    // 51
	"Red Keycard",                  // 52
	"Blue Keycard",                 // 53
	"Serpent Stone",                // 54
	"Jaguar Stone",                 // 55
	"Jaguar Stone L",               // 56
	"Jaguar Stone R",               // 57
	"Eagle Stone",                  // 58
	"Rook Plug",                    // 59
	"Queen Plug",                   // 60
	"Knight Plug",                  // 61
	"King Plug",                    // 62
	"Weapon Box Key",               // 63
	"Detonator",                    // 64
	"Explosive",                    // 65
	"Detonator and Explosive",      // 66
	"Square Crank",                 // 67
	"Film A",                       // 68
	"Film B",                       // 69
	"Film C",                       // 70
	"Unicorn Medal",                // 71
	"Eagle Medal",                  // 72
	"Wolf Medal",                   // 73
	"Cogwheel",                     // 74
	"Manhole Opener",               // 75
	"Main Fuse",                    // 76
	"Fuse Case",                    // 77
	"Vaccine",                      // 78
	"Vaccine Base",                 // 79
	"Film D",                       // 80
	"Vaccine Cart",                 // 81
	"G-Virus",                      // 82
	"Special Key",                  // 83
	"Joint Plug Blue",              // 84
	"Joint Plug Red",               // 85
	"Cord",                         // 86
	"Photo (Ada)",                  // 87
	"Cabin Key",                    // 88
	"Spade Key",                    // 89
	"Diamond Key",                  // 90
	"Heart Key",                    // 91
	"Club Key",                     // 92
	"Down Key",                     // 93
	"Up Key",                       // 94
	"Power Room Key",               // 95
	"MO Disk",                      // 96
	"Umbrella Keycard",             // 97
	"Master Key",                   // 98
	"Platform Key",                 // 99
}

// ItemName returns "Name (id)" for an item ID, or "Unknown (id)".
func ItemName(id uint16) string {
	name := "Unknown"
	if int(id) < len(ItemNames) {
		name = ItemNames[id]
	}
	return fmt.Sprintf("%s (%d)", name, id)
}

// IsWeaponItem reports whether the item ID is a weapon (Knife through Beretta).
func IsWeaponItem(id uint16) bool {
	return id >= 1 && id <= 19
}

// SceType is the kind of an AOT (area of trigger).
type SceType uint8

// AOT kinds.
const (
	SceAuto      SceType = 0
	SceDoor      SceType = 1
	SceItem      SceType = 2
	SceNormal    SceType = 3
	SceMessage   SceType = 4
	SceEvent     SceType = 5
	SceFlagChg   SceType = 6
	SceWater     SceType = 7
	SceMove      SceType = 8
	SceSave      SceType = 9
	SceItemBox   SceType = 10
	SceDamage    SceType = 11
	SceStatus    SceType = 12
	SceHikidashi SceType = 13
	SceWindows   SceType = 14
)

var sceTypeNames = []string{
	"Auto",
	"Door",
	"Item",
	"Normal",
	"Message",
	"Event",
	"Flag Change",
	"Water",
	"Move",
	"Save",
	"Item Box",
	"Damage",
	"Status",
	"Hikidashi",
	"Windows",
}

// String returns the AOT kind name.
func (t SceType) String() string {
	if int(t) < len(sceTypeNames) {
		return sceTypeNames[t]
	}
	return fmt.Sprintf("Unknown(%d)", t)
}

// IsTrigger reports whether the AOT fires on player interaction.
func (t SceType) IsTrigger() bool {
	switch t {
	case SceDoor, SceEvent, SceFlagChg, SceItem, SceItemBox, SceSave, SceDamage, SceMessage:
		return true
	}
	return false
}

// SAT trigger flags of an AOT.
const (
	SATTriggerByPlayer uint8 = 0x01
	SATTriggerByNPC    uint8 = 0x02
	SATTriggerByObject uint8 = 0x04
	SATTriggerByAlly   uint8 = 0x08
	SATTriggerOnAction uint8 = 0x10
	SATTriggerFront    uint8 = 0x20
	SATTriggerCenter   uint8 = 0x40
	SAT4P              uint8 = 0x80
)

var satFlagNames = []string{
	"Player",
	"NPC",
	"Object",
	"Ally",
	"Action",
	"Front",
	"Center",
	"4P",
}

// SATFlagsString returns the set SAT flags joined with "|", or "None".
func SATFlagsString(sat uint8) string {
	var parts []string
	for i, name := range satFlagNames {
		if sat&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}
