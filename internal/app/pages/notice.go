package pages

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

func (n *Notice) IsError() bool {
	return n != nil && n.Kind == NoticeError
}

// noticeBoard holds the one notice a page shows on its next render.
type noticeBoard struct {
	notice *Notice
}

func (b *noticeBoard) notifySuccess(message string) {
	b.notice = &Notice{Kind: NoticeSuccess, Message: message}
}

func (b *noticeBoard) notifyError(message string) {
	b.notice = &Notice{Kind: NoticeError, Message: message}
}

// TakeNotice returns the pending notice and clears it.
func (b *noticeBoard) TakeNotice() *Notice {
	notice := b.notice
	b.notice = nil
	return notice
}

// PeekNotice returns the pending notice without clearing it.
func (b *noticeBoard) PeekNotice() *Notice {
	return b.notice
}
