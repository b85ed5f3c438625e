package svg2vd

import "fmt"

// Warning is a non-fatal diagnostic produced during conversion, with
// the tag and id of the element it concerns. Warnings never halt
// processing; they are collected and returned with the result.
type Warning struct {
	Tag     string
	ID      string
	Message string
}

func (w Warning) String() string {
	if w.ID != "" {
		return fmt.Sprintf("<%s id=%q>: %s", w.Tag, w.ID, w.Message)
	}
	return fmt.Sprintf("<%s>: %s", w.Tag, w.Message)
}

// warningList accumulates warnings during a single document
// conversion. Not safe for concurrent use; each conversion owns one.
type warningList struct {
	list []Warning
}

func (wl *warningList) add(tag, id, msg string) {
	wl.list = append(wl.list, Warning{Tag: tag, ID: id, Message: msg})
	logger().Warn(msg, "tag", tag, "id", id)
}
