package clipboard

// Notice is a transient message about a copy attempt. Err is set on failure.
type Notice struct {
	Title       string
	Description string
	Err         error
}

// Notifier shows a Notice to the user. Timing and dismissal are up to the
// implementation.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// CopyText offers text to c once and tells n how it went. what names the
// copied thing in the success message, e.g. "Code" or "Setup code". The
// returned error is the copier's; callers treat it as non-fatal.
func CopyText(c Copier, n Notifier, text, what string) error {
	if err := c.Copy(text); err != nil {
		n.Notify(Notice{
			Title:       "Copy failed",
			Description: err.Error(),
			Err:         err,
		})
		return err
	}
	n.Notify(Notice{
		Title:       "Copied!",
		Description: what + " copied to clipboard",
	})
	return nil
}
