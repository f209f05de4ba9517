package typesystem

// ArgumentConfigMap maps argument names to their configuration and keeps insertion order.
// The zero value is an empty map ready to use.
type ArgumentConfigMap struct {
	keys   []string
	values map[string]ArgumentConfig
}

// NewArgumentConfigMap builds a map from entries, in the given order.
func NewArgumentConfigMap(entries ...ArgumentConfigEntry) *ArgumentConfigMap {
	m := &ArgumentConfigMap{}
	for i := range entries {
		m.Set(entries[i].Name, entries[i].Config)
	}
	return m
}

// ArgumentConfigEntry is a single name/config pair of an ArgumentConfigMap.
type ArgumentConfigEntry struct {
	Name   string
	Config ArgumentConfig
}

// Set adds or replaces the config for name, a replaced entry keeps its position.
func (m *ArgumentConfigMap) Set(name string, config ArgumentConfig) {
	if m.values == nil {
		m.values = make(map[string]ArgumentConfig)
	}
	if _, exists := m.values[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.values[name] = config
}

func (m *ArgumentConfigMap) Get(name string) (ArgumentConfig, bool) {
	if m == nil || m.values == nil {
		return ArgumentConfig{}, false
	}
	config, ok := m.values[name]
	return config, ok
}

// Keys returns the argument names in insertion order.
func (m *ArgumentConfigMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *ArgumentConfigMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// DefineArguments turns the map into arguments, each key becomes the argument name.
func (m *ArgumentConfigMap) DefineArguments() []Argument {
	if m == nil {
		return []Argument{}
	}
	out := make([]Argument, 0, len(m.keys))
	for _, name := range m.keys {
		out = append(out, m.values[name].Argument(name))
	}
	return out
}

// ArgumentsToConfigMap is the inverse of DefineArguments.
func ArgumentsToConfigMap(args []Argument) *ArgumentConfigMap {
	m := &ArgumentConfigMap{
		keys:   make([]string, 0, len(args)),
		values: make(map[string]ArgumentConfig, len(args)),
	}
	for i := range args {
		m.Set(args[i].Name, args[i].Config())
	}
	return m
}
