package model

// Health is the backend's connectivity report.
type Health struct {
	status  string
	message string
	chain   string
	blocks  int64
}

func NewHealth(p HealthPayload) Health {
	return Health{
		status:  p.Status,
		message: p.Message,
		chain:   p.Chain,
		blocks:  p.Blocks,
	}
}

func (h Health) Status() string  { return h.status }
func (h Health) Message() string { return h.message }
func (h Health) Chain() string   { return h.chain }
func (h Health) Blocks() int64   { return h.blocks }

// IsOK reports whether the backend reached its node.
func (h Health) IsOK() bool {
	return h.status == "ok"
}
