package fieldboard

import "encoding/json"

// Drag payload channels, in decode priority order. The custom channel is
// written first; the generic channels are redundant fallbacks for platforms
// that restrict custom channel names mid-drag.
const (
	ChannelCustom = "application/x-fieldboard-entry"
	ChannelJSON   = "application/json"
	ChannelText   = "text/plain"
)

var decodeOrder = [...]string{ChannelCustom, ChannelJSON, ChannelText}

// EncodeDragPayload serializes a roster entry for a cross-widget drag. The
// same JSON document is written under the custom channel and both generic
// fallback channels.
func EncodeDragPayload(entry RosterEntry) map[string]string {
	data, err := json.Marshal(entry)
	if err != nil {
		// RosterEntry contains only strings and string slices; Marshal
		// cannot fail on it. Keep the nil-map contract anyway.
		return nil
	}
	s := string(data)
	return map[string]string{
		ChannelCustom: s,
		ChannelJSON:   s,
		ChannelText:   s,
	}
}

// DecodeDragPayload reads a dropped payload, trying the custom channel first
// and then the generic fallbacks. The first candidate that parses as JSON and
// carries a name or id wins. Returns false for foreign or malformed drags;
// drops fire for any drag, so a failed decode is ignored, not reported.
func DecodeDragPayload(channels map[string]string) (RosterEntry, bool) {
	for _, ch := range decodeOrder {
		raw, ok := channels[ch]
		if !ok || raw == "" {
			continue
		}
		var entry RosterEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		if entry.valid() {
			return entry, true
		}
	}
	return RosterEntry{}, false
}

// placeEntry builds a new card for entry centered on the world-space drop
// point, clamped into the canvas.
func placeEntry(entry RosterEntry, dropX, dropY, cw, ch float64) Card {
	r := clampRectToCanvas(Rect{
		X:      dropX - DefaultCardWidth/2,
		Y:      dropY - DefaultCardHeight/2,
		Width:  DefaultCardWidth,
		Height: DefaultCardHeight,
	}, cw, ch)
	return Card{
		ID:    newPlacementID(entry.ID),
		Pos:   Vec2{X: r.X, Y: r.Y},
		Entry: entry,
	}
}
