package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

type answer int

const (
	answerPending answer = iota
	answerYes
	answerNo
	answerFailed
)

// confirmation runs a native yes/no dialog off the game loop. The loop
// polls it every frame instead of blocking on the dialog.
type confirmation struct {
	result chan error
	err    error
}

var askQuestion = func(body string) error {
	return zenity.Question(body,
		zenity.Title("Emotional Mirror"),
		zenity.OKLabel("Save"),
		zenity.CancelLabel("Keep editing"),
	)
}

func askConfirm(body string) *confirmation {
	c := &confirmation{result: make(chan error, 1)}
	go func() { c.result <- askQuestion(body) }()
	return c
}

func (c *confirmation) poll() answer {
	select {
	case err := <-c.result:
		c.err = err
		switch {
		case err == nil:
			return answerYes
		case errors.Is(err, zenity.ErrCanceled):
			return answerNo
		default:
			return answerFailed
		}
	default:
		return answerPending
	}
}
