package network

// Normalized carries the three logical postback fields after alias
// resolution. The Has* flags distinguish "resolved to a value" from absent;
// empty string values never resolve (an empty parameter counts as absent).
type Normalized struct {
	PlayerID    string
	HasPlayerID bool
	RawEvent    string
	HasEvent    bool
	RawAmount   string
	HasAmount   bool
}

// Normalize resolves a raw parameter bag against the profile's alias lists.
// Pure: no side effects, the input map is not modified.
func (p *Profile) Normalize(params map[string][]string) Normalized {
	var n Normalized
	n.PlayerID, n.HasPlayerID = resolveAlias(params, p.PlayerIDAliases)
	n.RawEvent, n.HasEvent = resolveAlias(params, p.EventAliases)
	n.RawAmount, n.HasAmount = resolveAlias(params, p.AmountAliases)
	return n
}

// resolveAlias tries each alias in order and returns the first present,
// non-empty value. Repeated keys resolve to their first occurrence.
func resolveAlias(params map[string][]string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if v, ok := NewParam(params[alias]).First(); ok {
			return v, true
		}
	}
	return "", false
}
