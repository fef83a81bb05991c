package entities

// Selection is the runtime choice for one part: which asset, whether the
// part is drawn at all, and an optional color variant applied on top of the
// base style. Style and color are kept structured here; the packed
// "style-color" string form exists only at the manifest boundary.
type Selection struct {
	AssetID      string `json:"assetId"`
	Enabled      bool   `json:"enabled"`
	ColorVariant string `json:"colorVariant,omitempty"`
}

// SelectionSet is a full character: one Selection per part.
// body.Enabled is always true; any other part with Enabled=false
// contributes nothing to composition regardless of its AssetID.
type SelectionSet map[PartKey]Selection

// Normalize returns a copy with the body invariant enforced and unknown
// parts dropped
func (s SelectionSet) Normalize() SelectionSet {
	out := make(SelectionSet, len(s))
	for part, sel := range s {
		if !IsValidPart(part) {
			continue
		}
		if part == PartBody {
			sel.Enabled = true
		}
		out[part] = sel
	}
	return out
}

// CharacterDraft is a saved selection set, one per session
type CharacterDraft struct {
	ID         string       `json:"id"`
	SessionID  string       `json:"sessionId"`
	Name       string       `json:"name,omitempty"`
	Selections SelectionSet `json:"selections"`
	CreatedAt  int64        `json:"createdAt"`
	UpdatedAt  int64        `json:"updatedAt"`
}
