package components

// CloseRequestMsg is emitted when an overlay component asks to be dismissed.
type CloseRequestMsg struct{}
