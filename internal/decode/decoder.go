// Package decode converts raw payload bytes into canonical items. It
// understands two wire shapes: the compact format (short field names, values
// pre-scaled by 10000) and the legacy roster format the game API originally
// served. Shape detection probes the raw JSON for the compact marker field
// before committing to a full unmarshal.
package decode

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/dotcommander/modtriage/internal/types"
)

// PayloadShape identifies which wire variant a payload uses.
type PayloadShape int

const (
	// ShapeUnknown means neither variant was recognized.
	ShapeUnknown PayloadShape = iota
	// ShapeCompact is the flat {"items": [...]} form with short keys.
	ShapeCompact
	// ShapeLegacy is the nested roster form with full key names.
	ShapeLegacy
)

// String returns the shape name for diagnostics.
func (s PayloadShape) String() string {
	switch s {
	case ShapeCompact:
		return "compact"
	case ShapeLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// DetectShape probes the payload for the compact marker field ("d" on the
// first item) without unmarshaling the whole document.
func DetectShape(payload []byte) PayloadShape {
	items := gjson.GetBytes(payload, "items")
	if items.IsArray() {
		if gjson.GetBytes(payload, "items.0.d").Exists() {
			return ShapeCompact
		}
		if gjson.GetBytes(payload, "items.0.definitionId").Exists() {
			return ShapeLegacy
		}
		// An empty items array decodes to zero mods either way.
		if len(items.Array()) == 0 {
			return ShapeCompact
		}
	}
	if gjson.GetBytes(payload, "rosterUnit").IsArray() {
		return ShapeLegacy
	}
	return ShapeUnknown
}

// Names resolves character ids to display names. A nil map is valid and
// resolves nothing.
type Names map[string]string

// Resolve returns the display name for a character id, stripping the star
// level suffix first (CHARACTER:SEVEN_STAR -> CHARACTER).
func (n Names) Resolve(characterID string) string {
	base := characterID
	for i := 0; i < len(base); i++ {
		if base[i] == ':' {
			base = base[:i]
			break
		}
	}
	return n[base]
}

// Payload decodes a raw payload into canonical items, detecting the wire
// shape first. Items that cannot be decoded are skipped with a stderr
// warning; decoding never fails the whole payload over one bad record.
func Payload(raw []byte, names Names) ([]types.Item, error) {
	switch DetectShape(raw) {
	case ShapeCompact:
		return compactItems(raw, names), nil
	case ShapeLegacy:
		return legacyItems(raw, names), nil
	default:
		return nil, fmt.Errorf("unrecognized payload shape: no items or rosterUnit array")
	}
}

func compactItems(raw []byte, names Names) []types.Item {
	var out []types.Item
	gjson.GetBytes(raw, "items").ForEach(func(_, rec gjson.Result) bool {
		out = append(out, Item(rec, names))
		return true
	})
	return out
}

func legacyItems(raw []byte, names Names) []types.Item {
	var out []types.Item
	// Flat legacy shape: already-extracted records under "items".
	if gjson.GetBytes(raw, "items").IsArray() {
		gjson.GetBytes(raw, "items").ForEach(func(_, rec gjson.Result) bool {
			out = append(out, legacyItem(rec, rec.Get("characterId").String(), names))
			return true
		})
		return out
	}
	// Nested roster shape: mods live under each unit.
	gjson.GetBytes(raw, "rosterUnit").ForEach(func(_, unit gjson.Result) bool {
		charID := unit.Get("definitionId").String()
		unit.Get("equippedStatMod").ForEach(func(_, rec gjson.Result) bool {
			out = append(out, legacyItem(rec, charID, names))
			return true
		})
		return true
	})
	return out
}

// Item decodes a single wire record. Records carrying the compact marker
// field use short keys; anything else is treated as the legacy form and
// passed through with field renaming only.
func Item(rec gjson.Result, names Names) types.Item {
	if rec.Get("d").Exists() {
		return compactItem(rec, names)
	}
	return legacyItem(rec, rec.Get("characterId").String(), names)
}

func compactItem(rec gjson.Result, names Names) types.Item {
	charID := rec.Get("c").String()
	it := types.Item{
		ID:            rec.Get("id").String(),
		Tier:          int(rec.Get("t").Int()),
		Level:         int(rec.Get("l").Int()),
		Locked:        rec.Get("k").Bool(),
		CharacterID:   charID,
		CharacterName: names.Resolve(charID),
	}
	splitDefinition(rec.Get("d").String(), &it)

	// Compact values are already in natural units; no unscaling needed.
	if p := rec.Get("p"); p.Exists() {
		it.Primary = types.Stat{
			ID:    int(p.Get("i").Int()),
			Value: p.Get("v").Float(),
		}
	}
	rec.Get("s").ForEach(func(_, s gjson.Result) bool {
		sec := types.SecondaryStat{
			Stat: types.Stat{
				ID:    int(s.Get("i").Int()),
				Value: s.Get("v").Float(),
			},
			Rolls:         intOrDefault(s.Get("r"), 1),
			RollBoundsMin: int(s.Get("bmin").Int()),
			RollBoundsMax: int(s.Get("bmax").Int()),
		}
		s.Get("u").ForEach(func(_, rv gjson.Result) bool {
			sec.RollValues = append(sec.RollValues, parseRoll(rv))
			return true
		})
		it.Secondaries = append(it.Secondaries, sec)
		return true
	})
	return it
}

func legacyItem(rec gjson.Result, charID string, names Names) types.Item {
	it := types.Item{
		ID:            rec.Get("id").String(),
		Tier:          int(rec.Get("tier").Int()),
		Level:         int(rec.Get("level").Int()),
		Locked:        rec.Get("locked").Bool(),
		CharacterID:   charID,
		CharacterName: names.Resolve(charID),
	}
	splitDefinition(rec.Get("definitionId").String(), &it)

	if p := rec.Get("primaryStat.stat"); p.Exists() {
		it.Primary = types.Stat{
			ID:    int(p.Get("unitStatId").Int()),
			Value: decimalValue(p.Get("statValueDecimal")),
		}
	}
	rec.Get("secondaryStat").ForEach(func(_, s gjson.Result) bool {
		sec := types.SecondaryStat{
			Stat: types.Stat{
				ID:    int(s.Get("stat.unitStatId").Int()),
				Value: decimalValue(s.Get("stat.statValueDecimal")),
			},
			Rolls:         intOrDefault(s.Get("statRolls"), 1),
			RollBoundsMin: parseRoll(s.Get("statRollerBoundsMin")),
			RollBoundsMax: parseRoll(s.Get("statRollerBoundsMax")),
		}
		s.Get("unscaledRollValue").ForEach(func(_, rv gjson.Result) bool {
			sec.RollValues = append(sec.RollValues, parseRoll(rv))
			return true
		})
		it.Secondaries = append(it.Secondaries, sec)
		return true
	})
	return it
}

// splitDefinition splits the 3-character definition string into set digit,
// rarity dots, and slot digit. Malformed strings leave zeroed fields; the
// item then falls through evaluation to its default verdict rather than
// failing the decode.
func splitDefinition(def string, it *types.Item) {
	if len(def) != 3 {
		if def != "" {
			fmt.Fprintf(os.Stderr, "Warning: mod %s has malformed definition id %q\n", it.ID, def)
		}
		return
	}
	it.SetID = def[0:1]
	it.SlotID = def[2:3]
	if dots, err := strconv.Atoi(def[1:2]); err == nil {
		it.RarityDots = dots
	}
}

// decimalValue unscales a wire "decimal" value. Legacy payloads carry it as
// a string of ten-thousandths.
func decimalValue(v gjson.Result) float64 {
	n, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return 0
	}
	return n / types.ValueDivisor
}

// parseRoll reads a roll value or bound that legacy payloads encode as a
// string and compact payloads as a number.
func parseRoll(v gjson.Result) int {
	if v.Type == gjson.String {
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0
		}
		return n
	}
	return int(v.Int())
}

func intOrDefault(v gjson.Result, def int) int {
	if !v.Exists() {
		return def
	}
	return int(v.Int())
}
