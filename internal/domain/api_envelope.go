package domain

// API response envelope: {"success":true,"data":{…}} or
// {"success":false,"error":"…"}.
type APIEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok(data any) APIEnvelope     { return APIEnvelope{Success: true, Data: data} }
func Fail(msg string) APIEnvelope { return APIEnvelope{Success: false, Error: msg} }
