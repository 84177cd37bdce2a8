package model

// EnvEntry is one key/value pair of the evaluation environment. Keys are not
// unique; entries are addressed by Position.
type EnvEntry struct {
	Key      string
	Value    string
	Position int
}

// Environment is the ordered environment context handed to the compiler.
type Environment []EnvEntry

// Lookup returns the value of the last entry with the given key.
func (e Environment) Lookup(key string) (string, bool) {
	for i := len(e) - 1; i >= 0; i-- {
		if e[i].Key == key {
			return e[i].Value, true
		}
	}

	return "", false
}

// Pairs returns the entries as [key, value] pairs, the persisted shape.
func (e Environment) Pairs() [][2]string {
	out := make([][2]string, 0, len(e))
	for _, entry := range e {
		out = append(out, [2]string{entry.Key, entry.Value})
	}

	return out
}

// EnvironmentFromPairs rebuilds an environment from persisted pairs.
func EnvironmentFromPairs(pairs [][2]string) Environment {
	out := make(Environment, 0, len(pairs))
	for i, pair := range pairs {
		out = append(out, EnvEntry{Key: pair[0], Value: pair[1], Position: i})
	}

	return out
}
