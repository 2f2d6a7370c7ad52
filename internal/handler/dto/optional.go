package dto

import (
	"bytes"
	"encoding/json"
)

// NullableUint различает отсутствующее поле, явный null и значение.
// Нужен для PATCH полей-ссылок, которые можно обнулить (video.doctor).
type NullableUint struct {
	Set   bool
	Value *uint
}

// UnmarshalJSON вызывается только если ключ присутствует в JSON
func (n *NullableUint) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// NullableString различает отсутствующее поле, явный null и значение
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON вызывается только если ключ присутствует в JSON
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
