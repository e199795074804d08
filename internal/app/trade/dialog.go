package trade

import "errors"

// DialogState models the single-transaction dialog the UI drives. The
// dialog guarantees exactly one Buy or Sell call per commit, and a failed
// commit returns to amount selection with nothing mutated.
type DialogState string

const (
	DialogIdle            DialogState = "idle"
	DialogAmountSelection DialogState = "amount_selection"
	DialogCommitting      DialogState = "committing"
	DialogClosed          DialogState = "closed"
)

var ErrDialogTransition = errors.New("invalid dialog transition")

type Dialog struct {
	state DialogState
}

func NewDialog() *Dialog {
	return &Dialog{state: DialogIdle}
}

func (d *Dialog) State() DialogState { return d.state }

// Open moves the dialog into amount selection.
func (d *Dialog) Open() error {
	if d.state != DialogIdle {
		return ErrDialogTransition
	}
	d.state = DialogAmountSelection
	return nil
}

// Commit invokes exactly one transaction attempt. On success the dialog
// closes; on failure it returns to amount selection and surfaces the error.
func (d *Dialog) Commit(fn func() error) error {
	if d.state != DialogAmountSelection {
		return ErrDialogTransition
	}
	d.state = DialogCommitting
	if err := fn(); err != nil {
		d.state = DialogAmountSelection
		return err
	}
	d.state = DialogClosed
	return nil
}

// Close abandons the dialog from any non-terminal state.
func (d *Dialog) Close() error {
	if d.state == DialogClosed {
		return ErrDialogTransition
	}
	d.state = DialogClosed
	return nil
}
