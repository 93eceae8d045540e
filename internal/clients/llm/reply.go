package llm

// DiagnosticPrefix marks a reply that reports a failed completion instead of model output.
const DiagnosticPrefix = "出错了："

// Reply is the outcome of a completion request: either generated text or the reason
// the request failed.
type Reply struct {
	Text string
	Err  error
}

// Ok wraps generated text.
func Ok(text string) Reply {
	return Reply{Text: text}
}

// Failed wraps a completion failure.
func Failed(err error) Reply {
	return Reply{Err: err}
}

// OK reports whether the completion succeeded.
func (r Reply) OK() bool {
	return r.Err == nil
}

// Render returns the text to deliver to the user. A failure renders as the
// diagnostic prefix followed by the error detail.
func (r Reply) Render() string {
	if r.Err != nil {
		return DiagnosticPrefix + r.Err.Error()
	}
	return r.Text
}
