package skill

import "encoding/json"

// List is a skills field as served by the backend. It decodes every wire
// encoding the backend is known to emit into a flat list of strings.
type List []string

func (l *List) UnmarshalJSON(b []byte) error {
	*l = Normalize(b)
	return nil
}

func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l List) Strings() []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
