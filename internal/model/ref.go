package model

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference field the server returns either as a bare id string or,
// when the request asked for relations, as the populated record. Consumers
// must check Populated before dereferencing.
type Ref[T any] struct {
	ID     string
	Record *T
}

func (r Ref[T]) Populated() bool { return r.Record != nil }

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}
	if data[0] == '"' {
		r.Record = nil
		return json.Unmarshal(data, &r.ID)
	}
	rec := new(T)
	if err := json.Unmarshal(data, rec); err != nil {
		return err
	}
	r.Record = rec
	// keep ID usable even for populated objects
	var probe struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.ID != "" {
		r.ID = probe.ID
	}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Record != nil {
		return json.Marshal(r.Record)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
