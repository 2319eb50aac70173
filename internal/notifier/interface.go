package notifier

// TextNotifier defines a minimal text notification interface so callers
// never depend on a concrete backend (e.g. Telegram).
type TextNotifier interface {
	SendText(text string) error
}
