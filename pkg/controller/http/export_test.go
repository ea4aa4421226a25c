package http

// WithNotifyObserver lets tests wait for background notifications
func (u *UseCases) WithNotifyObserver(fn func(<-chan struct{})) *UseCases {
	u.notifyDone = fn
	return u
}

var StatusOf = statusOf
