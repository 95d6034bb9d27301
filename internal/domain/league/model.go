package league

// League is a read-only lookup row used to label teams.
type League struct {
	ID   string
	Name string
}

// Names indexes leagues by id.
func Names(items []League) map[string]string {
	out := make(map[string]string, len(items))
	for _, item := range items {
		out[item.ID] = item.Name
	}
	return out
}
