package response

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar day. It is rendered in UTC so a due date stored at
// midnight never shifts to the previous day.
type Date time.Time

func (d Date) String() string {
	return time.Time(d).UTC().Format(DateFormat)
}

// MarshalJSON renders the day as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD".
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return fmt.Errorf("response: invalid date %q: %w", s, err)
	}
	*d = Date(t)
	return nil
}
