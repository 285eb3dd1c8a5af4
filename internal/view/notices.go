// Package view holds the presentation model for the console: page sets,
// chart payloads, badge and color classification, and the HTML fragment
// renderers. It has no knowledge of HTTP or the upstream backend.
package view

// NoticeLevel selects how a notice is styled in the shell.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeWarning NoticeLevel = "warning"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a transient banner message shown to the user. Notices never
// block rendering; a degraded page carries its notices alongside whatever
// data did load.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

func SuccessNotice(msg string) Notice { return Notice{Level: NoticeSuccess, Message: msg} }
func ErrorNotice(msg string) Notice   { return Notice{Level: NoticeError, Message: msg} }
func WarningNotice(msg string) Notice { return Notice{Level: NoticeWarning, Message: msg} }
func InfoNotice(msg string) Notice    { return Notice{Level: NoticeInfo, Message: msg} }
