package notify

// Sink adalah channel broadcast best-effort untuk notifikasi UI.
// EmitToAll tidak boleh blocking dan tidak pernah menggagalkan operasi
// pemanggilnya - implementasi wajib menelan error sendiri.
type Sink interface {
	EmitToAll(event string, payload any)
}

// NopSink untuk test / deployment tanpa websocket
type NopSink struct{}

func (NopSink) EmitToAll(event string, payload any) {}
