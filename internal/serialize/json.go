package serialize

import (
	"encoding/json"
	"io"
)

func MarshalJSON(data any) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

func UnMarshalJSON(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}

// WriteJSON writes data as indented JSON followed by a newline.
func WriteJSON(w io.Writer, data any) error {
	b, err := MarshalJSON(data)
	if err != nil {
		return err
	}

	_, err = w.Write(append(b, '\n'))
	return err
}
