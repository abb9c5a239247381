package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
)

// Form builds a multipart/form-data payload. Fields are appended only when
// explicitly set, which is how the update endpoints distinguish "leave this
// field alone" from "set it to empty".
type Form struct {
	fields []formField
	file   *formFile
}

type formField struct {
	name, value string
}

type formFile struct {
	field, name string
	content     []byte
}

func (f *Form) Set(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// SetJSON stores the JSON encoding of v as a string field. The backend
// expects id arrays this way.
func (f *Form) SetJSON(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.Set(name, string(b))
	return nil
}

func (f *Form) SetFile(field, name string, content []byte) {
	f.file = &formFile{field: field, name: name, content: content}
}

// Encode renders the multipart body and its Content-Type header value.
func (f *Form) Encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", err
		}
	}
	if f.file != nil {
		fw, err := w.CreateFormFile(f.file.field, f.file.name)
		if err != nil {
			return nil, "", err
		}
		if _, err := fw.Write(f.file.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
