package tui

type loadedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type toastExpiredMsg struct{}

type clearStatusMsg struct{}
