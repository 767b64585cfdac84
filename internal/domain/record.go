package domain

// Record is a row of a lifecycle-managed entity in its native field shape,
// keyed by column name. Generic lifecycle operations return Records because
// they operate across heterogeneous entity types; typed repositories return
// concrete structs instead.
type Record map[string]any

// ID returns the record's primary key, or 0 if absent or not an integer.
func (r Record) ID() int64 {
	switch v := r["id"].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	}
	return 0
}
