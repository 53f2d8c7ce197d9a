package ws

// server → client
type ProgressPayload struct {
	Type              string  `json:"type"`
	State             string  `json:"state"`
	Progress          float64 `json:"progress"`
	TimeLeftSeconds   int64   `json:"time_left_seconds"`
	Earnings          int64   `json:"earnings"`
	PotentialEarnings int64   `json:"potential_earnings"`
}

type ErrorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
